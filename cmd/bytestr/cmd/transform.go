package cmd

import (
	"fmt"
	"strconv"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhr3/bytekit/bytestring"
)

func (a *App) splitCmd() *cobra.Command {
	var skipEmpty, keepSeparators bool
	c := &cobra.Command{
		Use:   "split <string|-> <separator>",
		Short: "Print each segment on its own line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			flags := bytestring.NoSplitFlag
			if skipEmpty {
				flags |= bytestring.SkipEmpty
			}
			if keepSeparators {
				flags |= bytestring.KeepSeparators
			}

			var parts []*bytestring.String
			sep := args[1]
			if len(sep) == 1 {
				parts = s.SplitByte(sep[0], flags)
			} else {
				if keepSeparators {
					return cerr.Newf("--keep-separators needs a single-byte separator, got %q", sep)
				}
				parts = s.Split(sep, flags)
			}
			a.log.Debug("split", zap.String("separator", sep), zap.Int("segments", len(parts)))
			for _, p := range parts {
				printLine(cmd, p)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&skipEmpty, "skip-empty", false, "drop empty segments")
	c.Flags().BoolVar(&keepSeparators, "keep-separators", false, "keep the separator on each segment")
	return c
}

func (a *App) joinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <separator> <part>...",
		Short: "Join the parts with separator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := make([]*bytestring.String, 0, len(args)-1)
			for _, p := range args[1:] {
				parts = append(parts, bytestring.New(p))
			}
			out := bytestring.Join(parts, args[0])
			a.log.Debug("join", zap.Int("parts", len(parts)), zap.Int("len", out.Len()))
			printLine(cmd, out)
			return nil
		},
	}
}

func (a *App) trimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trim <string|->",
		Short: "Strip leading and trailing bytes of the trim set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			out := s.Trimmed(a.cfg.TrimSet)
			a.log.Debug("trim", zap.Int("before", s.Len()), zap.Int("after", out.Len()))
			printLine(cmd, out)
			return nil
		},
	}
}

func (a *App) padCmd() *cobra.Command {
	var (
		size     int
		fill     string
		atEnd    bool
		truncate bool
	)
	c := &cobra.Command{
		Use:   "pad <string|->",
		Short: "Pad or cut to an exact size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fill) != 1 {
				return cerr.Newf("--fill must be a single byte, got %q", fill)
			}
			if size < 0 {
				return cerr.Newf("--size must not be negative, got %d", size)
			}
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			side := bytestring.PadBeginning
			if atEnd {
				side = bytestring.PadEnd
			}
			out := s.Padded(side, size, fill[0], truncate)
			a.log.Debug("pad", zap.Int("size", size), zap.Bool("end", atEnd), zap.Bool("truncate", truncate))
			printLine(cmd, out)
			return nil
		},
	}
	c.Flags().IntVar(&size, "size", 0, "target size in bytes")
	c.Flags().StringVar(&fill, "fill", " ", "fill byte")
	c.Flags().BoolVar(&atEnd, "end", false, "pad or cut at the end instead of the beginning")
	c.Flags().BoolVar(&truncate, "truncate", false, "cut strings longer than size")
	return c
}

func (a *App) caseCmd(use, short string, conv func(*bytestring.String) *bytestring.String) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <string|->",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			a.log.Debug(use, zap.Int("len", s.Len()))
			printLine(cmd, conv(s))
			return nil
		},
	}
}

func (a *App) midCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mid <string|-> <from> [count]",
		Short: "Print count bytes starting at from, or the rest of the string",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return cerr.Wrapf(err, "from %q", args[1])
			}
			if from < 0 || from > s.Len() {
				return cerr.Newf("from %d out of range [0:%d]", from, s.Len())
			}
			n := -1
			if len(args) == 3 {
				if n, err = strconv.Atoi(args[2]); err != nil {
					return cerr.Wrapf(err, "count %q", args[2])
				}
			}
			a.log.Debug("mid", zap.Int("from", from), zap.Int("count", n))
			printLine(cmd, s.Mid(from, n))
			return nil
		},
	}
}

func (a *App) chompCmd() *cobra.Command {
	var set string
	c := &cobra.Command{
		Use:   "chomp <string|->",
		Short: "Strip trailing bytes of a set, never the first byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			removed := s.Chomp(set)
			a.log.Debug("chomp", zap.String("set", set), zap.Int("removed", removed))
			printLine(cmd, s)
			return nil
		},
	}
	c.Flags().StringVar(&set, "set", "\r\n", "bytes to strip")
	return c
}

func (a *App) replaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <string|-> <from> <to>",
		Short: "Replace every occurrence of from with to",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			n := s.ReplaceAll(args[1], args[2], a.cfg.CaseSensitivity())
			a.log.Debug("replace", zap.String("from", args[1]), zap.String("to", args[2]), zap.Int("replaced", n))
			printLine(cmd, s)
			if n == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no matches")
			}
			return nil
		},
	}
}
