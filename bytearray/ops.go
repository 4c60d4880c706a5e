package bytearray

import (
	"bytes"
	"fmt"

	"github.com/pboyd/reclass"
)

// Mutators change b in place and return nothing but errors.

func (b *ByteArray) Append(v byte) {
	b.data = append(b.data, v)
}

// Extend appends the bytes of other to b.
func (b *ByteArray) Extend(other Sequence) {
	b.data = append(b.data, other.Bytes()...)
}

// Insert puts v before index i. Indexes past either end are clamped like
// they are for slicing.
func (b *ByteArray) Insert(i int, v byte) {
	i = b.clamp(i)
	b.data = append(b.data, 0)
	copy(b.data[i+1:], b.data[i:])
	b.data[i] = v
}

// Pop removes and returns the byte at index i. Use -1 for the last byte.
func (b *ByteArray) Pop(i int) (byte, error) {
	v, err := b.At(i)
	if err != nil {
		return 0, err
	}
	return v, b.DelAt(i)
}

// Remove deletes the first occurrence of v.
func (b *ByteArray) Remove(v byte) error {
	i := bytes.IndexByte(b.data, v)
	if i < 0 {
		return fmt.Errorf("%w: %#02x not in sequence", reclass.ErrValue, v)
	}
	return b.DelAt(i)
}

func (b *ByteArray) Reverse() {
	for i, j := 0, len(b.data)-1; i < j; i, j = i+1, j-1 {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	}
}

func (b *ByteArray) Clear() {
	b.data = b.data[:0]
}

// Producers return a new ByteArray and leave b alone.

// Copy returns a copy of b.
func (b *ByteArray) Copy() *ByteArray {
	return b.Clone()
}

// Slice returns the bytes from i up to j. Negative indexes count from the
// end and out of range indexes are clamped.
func (b *ByteArray) Slice(i, j int) *ByteArray {
	i, j = b.clamp(i), b.clamp(j)
	if j < i {
		return &ByteArray{}
	}
	return FromBytes(b.data[i:j])
}

func (b *ByteArray) clamp(i int) int {
	if i < 0 {
		i += len(b.data)
	}
	return min(max(i, 0), len(b.data))
}

// Concat returns b followed by other.
func (b *ByteArray) Concat(other Sequence) *ByteArray {
	data := make([]byte, 0, len(b.data)+len(other.Bytes()))
	data = append(data, b.data...)
	data = append(data, other.Bytes()...)
	return &ByteArray{data: data}
}

// Repeat returns b repeated n times. n < 1 gives an empty sequence.
func (b *ByteArray) Repeat(n int) *ByteArray {
	if n < 1 {
		return &ByteArray{}
	}
	return &ByteArray{data: bytes.Repeat(b.data, n)}
}

// LJust returns b followed by as many fill bytes as needed to reach width.
func (b *ByteArray) LJust(width int, fill byte) *ByteArray {
	n := width - len(b.data)
	if n <= 0 {
		return b.Clone()
	}
	return &ByteArray{data: append(bytes.Clone(b.data), bytes.Repeat([]byte{fill}, n)...)}
}

// RJust returns b preceded by as many fill bytes as needed to reach width.
func (b *ByteArray) RJust(width int, fill byte) *ByteArray {
	n := width - len(b.data)
	if n <= 0 {
		return b.Clone()
	}
	return &ByteArray{data: append(bytes.Repeat([]byte{fill}, n), b.data...)}
}

// Strip returns b without leading and trailing bytes found in chars, or
// ASCII whitespace when chars is empty.
func (b *ByteArray) Strip(chars ...byte) *ByteArray {
	if len(chars) == 0 {
		return FromBytes(bytes.TrimSpace(b.data))
	}
	return FromBytes(bytes.Trim(b.data, string(chars)))
}

// Split cuts b around every occurrence of sep.
func (b *ByteArray) Split(sep Sequence) ([]*ByteArray, error) {
	if len(sep.Bytes()) == 0 {
		return nil, fmt.Errorf("%w: empty separator", reclass.ErrValue)
	}

	parts := bytes.Split(b.data, sep.Bytes())
	out := make([]*ByteArray, len(parts))
	for i, p := range parts {
		out[i] = FromBytes(p)
	}
	return out, nil
}

// Partition cuts b around the first occurrence of sep and returns the part
// before it, the separator and the part after. When sep is missing the
// result is b followed by two empty sequences.
func (b *ByteArray) Partition(sep Sequence) ([3]*ByteArray, error) {
	if len(sep.Bytes()) == 0 {
		return [3]*ByteArray{}, fmt.Errorf("%w: empty separator", reclass.ErrValue)
	}

	before, after, found := bytes.Cut(b.data, sep.Bytes())
	if !found {
		return [3]*ByteArray{b.Clone(), {}, {}}, nil
	}
	return [3]*ByteArray{FromBytes(before), FromBytes(sep.Bytes()), FromBytes(after)}, nil
}

// Queries

// Count returns the number of non-overlapping occurrences of sub.
func (b *ByteArray) Count(sub Sequence) int {
	return bytes.Count(b.data, sub.Bytes())
}

// Find returns the index of the first occurrence of sub, or -1.
func (b *ByteArray) Find(sub Sequence) int {
	return bytes.Index(b.data, sub.Bytes())
}

// Index is like Find but fails when sub is missing.
func (b *ByteArray) Index(sub Sequence) (int, error) {
	i := b.Find(sub)
	if i < 0 {
		return -1, fmt.Errorf("%w: subsection not found", reclass.ErrValue)
	}
	return i, nil
}

func (b *ByteArray) HasPrefix(prefix Sequence) bool {
	return bytes.HasPrefix(b.data, prefix.Bytes())
}
