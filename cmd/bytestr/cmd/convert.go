package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhr3/bytekit/bytestring"
)

func (a *App) numberCmd() *cobra.Command {
	var (
		base     int
		isFloat  bool
		unsigned bool
	)
	c := &cobra.Command{
		Use:   "number <value>",
		Short: "Render an integer in base 10, 16, 8 or 1, or a float in fixed point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if isFloat {
				f, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return cerr.Wrapf(err, "parse float %q", args[0])
				}
				a.log.Debug("number", zap.Float64("value", f), zap.Int("precision", a.cfg.Precision))
				printLine(cmd, bytestring.NumberFloat(f, a.cfg.Precision))
				return nil
			}

			switch base {
			case 1, 8, 10, 16:
			default:
				return cerr.Newf("unsupported base %d, want 1, 8, 10 or 16", base)
			}
			if unsigned {
				v, err := bytestring.New(args[0]).ParseUint(0, 64)
				if err != nil {
					return err
				}
				a.log.Debug("number", zap.Uint64("value", v), zap.Int("base", base))
				printLine(cmd, bytestring.Number(v, base))
				return nil
			}
			v, err := bytestring.New(args[0]).ParseInt(0, 64)
			if err != nil {
				return err
			}
			a.log.Debug("number", zap.Int64("value", v), zap.Int("base", base))
			printLine(cmd, bytestring.Number(v, base))
			return nil
		},
	}
	c.Flags().IntVar(&base, "base", 10, "output base: 10, 16, 8, or 1 for LSB-first binary")
	c.Flags().BoolVar(&isFloat, "float", false, "treat the value as a float")
	c.Flags().BoolVar(&unsigned, "unsigned", false, "parse the value as a 64-bit unsigned integer")
	return c
}

func (a *App) parseCmd() *cobra.Command {
	var (
		base     int
		bitSize  int
		unsigned bool
		legacy   bool
	)
	c := &cobra.Command{
		Use:   "parse <string|->",
		Short: "Parse an integer",
		Long: `Parse an integer with strtoll rules: leading whitespace, optional sign,
base 0 detects 0x and 0 prefixes. With --legacy the partial value and an ok
flag are printed instead of failing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if legacy {
				var (
					v  any
					ok bool
				)
				switch {
				case unsigned && bitSize == 32:
					v, ok = s.ToULong(base)
				case unsigned:
					v, ok = s.ToULongLong(base)
				case bitSize == 32:
					v, ok = s.ToLong(base)
				default:
					v, ok = s.ToLongLong(base)
				}
				a.log.Debug("parse", zap.Bool("legacy", true), zap.Any("value", v), zap.Bool("ok", ok))
				fmt.Fprintln(out, v, ok)
				return nil
			}

			if unsigned {
				v, err := s.ParseUint(base, bitSize)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				return nil
			}
			v, err := s.ParseInt(base, bitSize)
			if err != nil {
				return err
			}
			a.log.Debug("parse", zap.Int64("value", v), zap.Int("base", base), zap.Int("bits", bitSize))
			fmt.Fprintln(out, v)
			return nil
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			switch bitSize {
			case 8, 16, 32, 64:
			default:
				return cerr.Newf("unsupported --bits %d, want 8, 16, 32 or 64", bitSize)
			}
			if legacy && bitSize != 32 && bitSize != 64 {
				return cerr.Newf("--legacy supports --bits 32 or 64, got %d", bitSize)
			}
			return nil
		},
	}
	c.Flags().IntVar(&base, "base", 10, "0 to detect from prefix, or 2..36")
	c.Flags().IntVar(&bitSize, "bits", 64, "result size: 8, 16, 32 or 64")
	c.Flags().BoolVar(&unsigned, "unsigned", false, "parse an unsigned value")
	c.Flags().BoolVar(&legacy, "legacy", false, "print value and ok flag instead of failing")
	return c
}

func (a *App) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <template> [arg]...",
		Short: "Render a printf template; integer and float args are typed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				vals = append(vals, typedArg(arg))
			}
			out := bytestring.Format(args[0], vals...)
			a.log.Debug("format", zap.String("template", args[0]), zap.Int("args", len(vals)), zap.Int("len", out.Len()))
			printLine(cmd, out)
			return nil
		},
	}
}

// typedArg turns a command-line word into an int64, a float64 or a string.
func typedArg(arg string) any {
	s := bytestring.New(arg)
	if v, err := s.ParseInt(10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}

func (a *App) timeCmd() *cobra.Command {
	var layout string
	c := &cobra.Command{
		Use:   "time [epoch]",
		Short: "Render seconds since the Unix epoch, default now",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f bytestring.TimeFormat
			switch strings.ToLower(layout) {
			case "datetime":
				f = bytestring.DateTime
			case "date":
				f = bytestring.Date
			case "time":
				f = bytestring.Time
			default:
				return cerr.Newf("unknown --format %q, want datetime, date or time", layout)
			}
			epoch := time.Now().Unix()
			if len(args) == 1 {
				v, err := bytestring.New(args[0]).ParseInt(10, 64)
				if err != nil {
					return err
				}
				epoch = v
			}
			a.log.Debug("time", zap.Int64("epoch", epoch), zap.String("format", layout), zap.Bool("utc", a.cfg.TimeUTC))
			printLine(cmd, bytestring.FormatTimeWith(a.cfg.Breakdown(), epoch, f))
			return nil
		},
	}
	c.Flags().StringVar(&layout, "format", "datetime", "datetime, date or time")
	return c
}
