package ctftools

import (
	"bytes"
	"fmt"

	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"

	"github.com/pboyd/reclass"
	"github.com/pboyd/reclass/hexbytes"
)

// Arch selects the instruction set Disassemble decodes.
type Arch string

const (
	Arch386   Arch = "386"
	ArchAMD64 Arch = "amd64"
	ArchARM64 Arch = "arm64"
)

// Instruction is one decoded machine instruction.
type Instruction struct {
	// Offset from the start of the code.
	Offset int
	Code   *hexbytes.HexBytes
	// Text is the instruction in Intel syntax for x86 and GNU syntax for
	// arm64.
	Text string
}

// Disassemble decodes code from start to end. pc is the address the code
// would run from, which only matters for the targets of relative jumps.
func Disassemble(code *hexbytes.HexBytes, arch Arch, pc uint64) ([]Instruction, error) {
	raw := code.Bytes()

	var insts []Instruction
	for i := 0; i < len(raw); {
		n, text, err := decode(raw[i:], arch, pc+uint64(i))
		if err != nil {
			return nil, fmt.Errorf("decode error at offset %d: %w", i, err)
		}

		insts = append(insts, Instruction{
			Offset: i,
			Code:   code.Slice(i, i+n),
			Text:   text,
		})
		i += n
	}
	return insts, nil
}

func decode(src []byte, arch Arch, pc uint64) (int, string, error) {
	switch arch {
	case Arch386, ArchAMD64:
		mode := 64
		if arch == Arch386 {
			mode = 32
		}
		inst, err := x86asm.Decode(src, mode)
		if err != nil {
			return 0, "", err
		}
		return inst.Len, x86asm.IntelSyntax(inst, pc, nil), nil
	case ArchARM64:
		inst, err := arm64asm.Decode(src)
		if err != nil {
			return 0, "", err
		}
		return 4, arm64asm.GNUSyntax(inst), nil
	}
	return 0, "", fmt.Errorf("%w: unsupported architecture %q", reclass.ErrValue, arch)
}

// Format lists instructions one per line with their address and machine
// code, similar to objdump.
func Format(insts []Instruction, pc uint64) string {
	var buf bytes.Buffer
	for _, inst := range insts {
		fmt.Fprintf(&buf, "0x%08x\t%-20s\t%s\n", pc+uint64(inst.Offset), inst.Code.Hex(""), inst.Text)
	}
	return buf.String()
}
