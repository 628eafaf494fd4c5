// Package config loads bytestr settings from defaults, an optional YAML
// file, BYTESTR_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mhr3/bytekit/bytestring"
)

const EnvPrefix = "BYTESTR"

const (
	KeyCaseInsensitive = "case_insensitive"
	KeyTrimSet         = "trim_set"
	KeyPrecision       = "precision"
	KeyLogLevel        = "log_level"
	KeyTimeUTC         = "time_utc"
)

// Config is the resolved CLI configuration.
type Config struct {
	CaseInsensitive bool   `mapstructure:"case_insensitive"`
	TrimSet         string `mapstructure:"trim_set"`
	Precision       int    `mapstructure:"precision"`
	LogLevel        string `mapstructure:"log_level"`
	TimeUTC         bool   `mapstructure:"time_utc"`
}

// CaseSensitivity maps CaseInsensitive onto the bytestring setting.
func (c Config) CaseSensitivity() bytestring.CaseSensitivity {
	if c.CaseInsensitive {
		return bytestring.CaseInsensitive
	}
	return bytestring.CaseSensitive
}

// Breakdown returns the time breakdown selected by TimeUTC.
func (c Config) Breakdown() bytestring.Breakdown {
	if c.TimeUTC {
		return bytestring.UTCBreakdown
	}
	return bytestring.LocalBreakdown
}

// New returns a viper instance with defaults and environment lookup set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCaseInsensitive, false)
	v.SetDefault(KeyTrimSet, bytestring.DefaultTrimSet)
	v.SetDefault(KeyPrecision, bytestring.DefaultPrecision)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTimeUTC, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag in fs to the key of the same name with dashes
// turned into underscores.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var result error
	fs.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "bind flag %q", f.Name))
		}
	})
	return result
}

// Load reads path when it is not empty and decodes the merged settings.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if c.Precision < 0 {
		c.Precision = bytestring.DefaultPrecision
	}
	return c, nil
}
