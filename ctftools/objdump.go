package ctftools

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/pboyd/reclass"
	"github.com/pboyd/reclass/helper"
)

// objdump wraps jump arrows in color codes when asked to visualize jumps.
const endArrow = "\x1b[0m"

// ParseObjdumpLine splits one instruction line of `objdump -d -M intel`
// output into
//
//	[address, machine code, mnemonic, operands...]
//
// Lines without machine code get "<no OP code>". Comments (#) and symbol
// annotations (<sym>) are dropped.
func ParseObjdumpLine(line string) ([]string, error) {
	if !strings.Contains(line, ":\t") {
		return nil, fmt.Errorf("%w: not an instruction line: %q", reclass.ErrValue, line)
	}

	line = strings.TrimSpace(line)
	addr := line[:strings.Index(line, ":")]

	afterArrow := 0
	if i := strings.LastIndex(line, endArrow); i >= 0 {
		afterArrow = i + len(endArrow)
	}

	firstTab, lastTab := strings.Index(line, "\t"), strings.LastIndex(line, "\t")
	if lastTab < 0 {
		return nil, fmt.Errorf("%w: no instruction: %q", reclass.ErrValue, line)
	}
	instStart := max(lastTab, afterArrow)
	instEnd := len(line)
	for _, stop := range []string{"#", "<"} {
		if i := strings.Index(line[instStart:], stop); i >= 0 {
			instEnd = min(instEnd, instStart+i)
		}
	}

	inst := strings.TrimSpace(line[instStart:instEnd])
	if inst == "" {
		return nil, fmt.Errorf("%w: no instruction: %q", reclass.ErrValue, line)
	}

	mnemonic, operands := inst, ""
	if i := strings.IndexFunc(inst, unicode.IsSpace); i >= 0 {
		mnemonic, operands = inst[:i], strings.TrimLeftFunc(inst[i:], unicode.IsSpace)
	}

	code := "<no OP code>"
	if firstTab < lastTab {
		seg := line[firstTab:lastTab]
		if i := strings.LastIndex(seg, endArrow); i >= 0 {
			seg = seg[i+len(endArrow):]
		}
		code = strings.TrimSpace(seg)
	}

	parsed := []string{addr, code, mnemonic}
	if operands != "" {
		parsed = append(parsed, strings.Split(operands, ",")...)
	}
	return parsed, nil
}

// Objdump disassembles the .text section of the executable at path with
// objdump. It returns the raw output lines and the parsed instruction lines.
func Objdump(ctx context.Context, path string) ([]string, [][]string, error) {
	out, err := exec.CommandContext(ctx, "objdump", "-z", "-M", "intel", "-d", "-j", ".text", path).Output()
	if err != nil {
		return nil, nil, fmt.Errorf("objdump %s: %w", path, err)
	}

	dump, err := helper.Split(strings.TrimSpace(string(out)), "\n", 0)
	if err != nil {
		return nil, nil, err
	}

	var parsed [][]string
	for _, line := range dump {
		if !strings.Contains(line, ":\t") {
			continue
		}
		p, err := ParseObjdumpLine(line)
		if err != nil {
			return nil, nil, err
		}
		parsed = append(parsed, p)
	}
	return dump, parsed, nil
}
