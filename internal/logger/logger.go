// Package logger owns the process-wide zap logger used by the bytestr CLI.
package logger

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// DefaultConfig returns a console logger writing to stderr at level.
func DefaultConfig(level zapcore.Level) zap.Config {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          "console",
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig:     enc,
	}
}

// ParseLevel maps a level name, in any case, to a zap level. Unknown names
// yield info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init builds the global logger from DefaultConfig at the named level.
func Init(level string) error {
	l, err := DefaultConfig(ParseLevel(level)).Build()
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	Set(l)
	return nil
}

// L returns the global logger. It is a no-op logger until Init or Set.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Set replaces the global logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	log = l
	mu.Unlock()
}

// Sync flushes the global logger. Errors from syncing a terminal are
// ignored.
func Sync() {
	_ = L().Sync()
}
