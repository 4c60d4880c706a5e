package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pboyd/reclass/ctftools"
	"github.com/pboyd/reclass/hexbytes"
)

var (
	disasmArch string
	disasmPC   uint64
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <hex>...",
	Short: "Disassemble machine code given as hex",
	Long: `Disassembles the bytes given as pairs of hex digits. Arguments are joined,
so "55 48 89 e5" and "5548 89e5" are the same code.`,
	Example: `  ctftools disasm --arch amd64 55 48 89 e5 c3`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDisasm,
}

func init() {
	disasmCmd.Flags().StringVar(&disasmArch, "arch", defaultArch(), "Instruction set: 386, amd64 or arm64")
	disasmCmd.Flags().Uint64Var(&disasmPC, "pc", 0, "Address of the first byte")
}

func defaultArch() string {
	switch runtime.GOARCH {
	case "386", "arm64":
		return runtime.GOARCH
	}
	return string(ctftools.ArchAMD64)
}

func runDisasm(cmd *cobra.Command, args []string) error {
	res, err := hexbytes.Class.Call(nil, "FromHex", strings.Join(args, ""))
	if err != nil {
		return err
	}
	code := res.(*hexbytes.HexBytes)

	logger.Debug("disassembling",
		zap.Stringer("code", code),
		zap.String("arch", disasmArch),
		zap.Uint64("pc", disasmPC))

	insts, err := ctftools.Disassemble(code, ctftools.Arch(disasmArch), disasmPC)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ctftools.Format(insts, disasmPC))
	return nil
}
