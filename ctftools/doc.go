// Package ctftools has helpers for poking at binaries: running commands
// through a pseudo terminal, parsing objdump output and disassembling byte
// sequences without objdump.
package ctftools
