package hexbytes

import "github.com/pboyd/reclass/bytearray"

// These shadow the ByteArray methods of the same name, which return
// *bytearray.ByteArray, and go through Class so the results are rebuilt as
// *HexBytes.

// Copy returns a copy of h.
func (h *HexBytes) Copy() *HexBytes {
	return mustCall[*HexBytes](h, "Copy")
}

// Slice returns the bytes from i up to j. Negative indexes count from the
// end and out of range indexes are clamped.
func (h *HexBytes) Slice(i, j int) *HexBytes {
	return mustCall[*HexBytes](h, "Slice", i, j)
}

// Concat returns h followed by other.
func (h *HexBytes) Concat(other bytearray.Sequence) *HexBytes {
	return mustCall[*HexBytes](h, "Concat", other)
}

// Extend returns h followed by other. Unlike ByteArray.Extend it does not
// modify h.
func (h *HexBytes) Extend(other bytearray.Sequence) *HexBytes {
	return mustCall[*HexBytes](h, "Extend", other)
}

// Repeat returns h repeated n times.
func (h *HexBytes) Repeat(n int) *HexBytes {
	return mustCall[*HexBytes](h, "Repeat", n)
}

// LJust returns h followed by fill bytes up to width.
func (h *HexBytes) LJust(width int, fill byte) *HexBytes {
	return mustCall[*HexBytes](h, "LJust", width, fill)
}

// RJust returns h preceded by fill bytes up to width.
func (h *HexBytes) RJust(width int, fill byte) *HexBytes {
	return mustCall[*HexBytes](h, "RJust", width, fill)
}

// Strip returns h without leading and trailing bytes found in chars, or
// ASCII whitespace when chars is empty.
func (h *HexBytes) Strip(chars ...byte) *HexBytes {
	args := make([]any, len(chars))
	for i, c := range chars {
		args[i] = c
	}
	return mustCall[*HexBytes](h, "Strip", args...)
}

// Split cuts h around every occurrence of sep.
func (h *HexBytes) Split(sep bytearray.Sequence) ([]*HexBytes, error) {
	return call[[]*HexBytes](h, "Split", sep)
}

// Partition cuts h around the first occurrence of sep.
func (h *HexBytes) Partition(sep bytearray.Sequence) ([3]*HexBytes, error) {
	return call[[3]*HexBytes](h, "Partition", sep)
}
