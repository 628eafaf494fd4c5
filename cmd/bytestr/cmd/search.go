package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhr3/bytekit/bytestring"
)

func (a *App) indexCmd() *cobra.Command {
	var from int
	c := &cobra.Command{
		Use:   "index <haystack|-> <needle>",
		Short: "Print the index of the first match, or -1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hay, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			idx := hay.IndexOf(args[1], from, a.cfg.CaseSensitivity())
			a.log.Debug("index", zap.Int("len", hay.Len()), zap.String("needle", args[1]),
				zap.Int("from", from), zap.Int("result", idx))
			fmt.Fprintln(cmd.OutOrStdout(), idx)
			return nil
		},
	}
	c.Flags().IntVar(&from, "from", 0, "first position to consider")
	return c
}

func (a *App) lastIndexCmd() *cobra.Command {
	var from int
	c := &cobra.Command{
		Use:   "lastindex <haystack|-> <needle>",
		Short: "Print the index of the last match, or -1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hay, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			idx := hay.LastIndexOf(args[1], from, a.cfg.CaseSensitivity())
			a.log.Debug("lastindex", zap.Int("len", hay.Len()), zap.String("needle", args[1]),
				zap.Int("from", from), zap.Int("result", idx))
			fmt.Fprintln(cmd.OutOrStdout(), idx)
			return nil
		},
	}
	c.Flags().IntVar(&from, "from", bytestring.FromEnd, "greatest match start to consider, -1 for the end")
	return c
}

func (a *App) containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <haystack|-> <needle>",
		Short: "Print whether needle occurs in haystack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hay, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			ok := hay.Contains(args[1], a.cfg.CaseSensitivity())
			a.log.Debug("contains", zap.String("needle", args[1]), zap.Bool("result", ok))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func (a *App) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <haystack|-> <needle>",
		Short: "Print the number of non-overlapping matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hay, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			n := hay.Count(args[1], a.cfg.CaseSensitivity())
			a.log.Debug("count", zap.String("needle", args[1]), zap.Int("result", n))
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
