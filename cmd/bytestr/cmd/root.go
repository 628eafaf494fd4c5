// Package cmd implements the bytestr command tree.
package cmd

import (
	"fmt"
	"io"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mhr3/bytekit/bytestring"
	"github.com/mhr3/bytekit/internal/config"
	"github.com/mhr3/bytekit/internal/logger"
)

// App carries state shared by every subcommand of one invocation.
type App struct {
	v       *viper.Viper
	cfg     config.Config
	log     *zap.Logger
	cfgFile string
}

// Option customises an App.
type Option func(*App)

// WithLogger makes the commands log to l instead of building a logger from
// the configured level.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.log = l }
}

// NewRootCmd builds the bytestr command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &App{v: config.New()}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:           "bytestr",
		Short:         "Byte string tools: search, split, trim, pad, convert, format",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.BoolP("case-insensitive", "i", false, "fold ASCII case when matching")
	pf.String("trim-set", bytestring.DefaultTrimSet, "bytes stripped by trim")
	pf.Int("precision", bytestring.DefaultPrecision, "fractional digits for floats")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.Bool("time-utc", false, "render times in UTC")

	root.AddCommand(
		a.indexCmd(),
		a.lastIndexCmd(),
		a.containsCmd(),
		a.countCmd(),
		a.splitCmd(),
		a.joinCmd(),
		a.trimCmd(),
		a.padCmd(),
		a.caseCmd("lower", "Lowercase ASCII letters", (*bytestring.String).ToLower),
		a.caseCmd("upper", "Uppercase ASCII letters", (*bytestring.String).ToUpper),
		a.midCmd(),
		a.chompCmd(),
		a.replaceCmd(),
		a.numberCmd(),
		a.parseCmd(),
		a.formatCmd(),
		a.timeCmd(),
		a.compressCmd(),
		a.hexCmd(),
		a.hashCmd(),
		a.validateCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	root := NewRootCmd()
	defer logger.Sync()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "bytestr: %v\n", err)
		return err
	}
	return nil
}

func (a *App) setup(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return cerr.Wrap(err, "bind flags")
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		if err := logger.Init(cfg.LogLevel); err != nil {
			return err
		}
		a.log = logger.L()
	}
	a.log.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("config_file", a.cfgFile),
		zap.Bool("case_insensitive", cfg.CaseInsensitive),
		zap.Int("precision", cfg.Precision),
		zap.Bool("time_utc", cfg.TimeUTC))
	return nil
}

// input resolves an argument to a String. "-" reads all of stdin and drops
// one trailing line break.
func input(cmd *cobra.Command, arg string) (*bytestring.String, error) {
	if arg != "-" {
		return bytestring.New(arg), nil
	}
	s := &bytestring.String{}
	if _, err := io.Copy(s, cmd.InOrStdin()); err != nil {
		return nil, cerr.Wrap(err, "read stdin")
	}
	if s.EndsWithByte('\n', bytestring.CaseSensitive) {
		s.Chop(1)
		if s.EndsWithByte('\r', bytestring.CaseSensitive) {
			s.Chop(1)
		}
	}
	return s, nil
}

func printLine(cmd *cobra.Command, s *bytestring.String) {
	out := cmd.OutOrStdout()
	_, _ = out.Write(s.Bytes())
	_, _ = io.WriteString(out, "\n")
}
