package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *App) compressCmd() *cobra.Command {
	var (
		decompress bool
		length     int
	)
	c := &cobra.Command{
		Use:   "compress <string|->",
		Short: "zlib-compress and print as hex, or reverse with --decompress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			if decompress {
				z, err := s.FromHex()
				if err != nil {
					return err
				}
				out, err := z.Uncompress(length)
				if err != nil {
					return err
				}
				a.log.Debug("decompress", zap.Int("in", z.Len()), zap.Int("out", out.Len()))
				printLine(cmd, out)
				return nil
			}
			z, err := s.Compress()
			if err != nil {
				return err
			}
			a.log.Debug("compress", zap.Int("in", s.Len()), zap.Int("out", z.Len()))
			printLine(cmd, z.ToHex())
			return nil
		},
	}
	c.Flags().BoolVarP(&decompress, "decompress", "d", false, "decode hex input and decompress it")
	c.Flags().IntVar(&length, "length", -1, "expected decompressed size, -1 for any")
	return c
}

func (a *App) hexCmd() *cobra.Command {
	var decode bool
	c := &cobra.Command{
		Use:   "hex <string|->",
		Short: "Hex-encode, or decode with --decode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			if !decode {
				printLine(cmd, s.ToHex())
				return nil
			}
			out, err := s.FromHex()
			if err != nil {
				return err
			}
			a.log.Debug("hex decode", zap.Int("len", out.Len()))
			printLine(cmd, out)
			return nil
		},
	}
	c.Flags().BoolVarP(&decode, "decode", "d", false, "decode hex input")
	return c
}

func (a *App) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <string|->",
		Short: "Print the 64-bit xxhash as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			h := s.Hash()
			a.log.Debug("hash", zap.Int("len", s.Len()), zap.Uint64("hash", h))
			fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", h)
			return nil
		},
	}
}

func (a *App) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <string|->",
		Short: "Report whether the input is ASCII, UTF-8, or where UTF-8 breaks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch bad := s.FirstInvalidUTF8(); {
			case s.IsASCII():
				fmt.Fprintln(out, "ascii")
			case bad < 0:
				fmt.Fprintln(out, "utf8")
			default:
				a.log.Debug("validate", zap.Int("invalid_at", bad))
				fmt.Fprintf(out, "invalid at %d\n", bad)
			}
			return nil
		},
	}
}
