package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pboyd/reclass/ctftools"
)

var objdumpRaw bool

var objdumpCmd = &cobra.Command{
	Use:   "objdump <path>",
	Short: "Disassemble the .text section of a binary with objdump",
	Long: `Runs objdump on the binary and prints one line per instruction:
address, machine code, mnemonic and operands separated by tabs.`,
	Args: cobra.ExactArgs(1),
	RunE: runObjdump,
}

func init() {
	objdumpCmd.Flags().BoolVar(&objdumpRaw, "raw", false, "Print objdump output as is")
}

func runObjdump(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	dump, parsed, err := ctftools.Objdump(ctx, args[0])
	if err != nil {
		return err
	}
	logger.Debug("objdump finished",
		zap.String("path", args[0]),
		zap.Int("lines", len(dump)),
		zap.Int("instructions", len(parsed)))

	out := cmd.OutOrStdout()
	if objdumpRaw {
		for _, line := range dump {
			fmt.Fprintln(out, line)
		}
		return nil
	}

	for _, p := range parsed {
		fmt.Fprintln(out, strings.Join(p, "\t"))
	}
	return nil
}
