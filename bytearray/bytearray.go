// Package bytearray implements a mutable sequence of bytes and declares it
// as a class that other types can derive from with reclass.
package bytearray

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/pboyd/reclass"
)

// ErrIndex is returned for an index outside of the sequence.
var ErrIndex = errors.New("index out of range")

// Sequence is anything that can be read as bytes. Both *ByteArray and types
// embedding it qualify.
type Sequence interface {
	Bytes() []byte
}

// ByteArray is an ordered, mutable sequence of bytes. Indexes start at 0 and
// negative indexes count from the end.
//
// The zero value is an empty sequence ready to use.
type ByteArray struct {
	data []byte
}

// New returns a ByteArray holding a copy of data.
func New(data ...byte) *ByteArray {
	return FromBytes(data)
}

// FromBytes returns a ByteArray holding a copy of b.
func FromBytes(b []byte) *ByteArray {
	return &ByteArray{data: bytes.Clone(b)}
}

// FromHex decodes pairs of hex digits. Whitespace between digits is ignored.
func FromHex(s string) (*ByteArray, error) {
	data, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, fmt.Errorf("%w: non-hexadecimal input %q: %w", reclass.ErrValue, s, err)
	}
	return &ByteArray{data: data}, nil
}

// Bytes returns the underlying bytes. The slice is only valid until the next
// modification.
func (b *ByteArray) Bytes() []byte {
	return b.data
}

// Clone returns a deep copy of b.
func (b *ByteArray) Clone() *ByteArray {
	return FromBytes(b.data)
}

func (b *ByteArray) Len() int {
	return len(b.data)
}

func (b *ByteArray) index(i int) (int, error) {
	if i < 0 {
		i += len(b.data)
	}
	if i < 0 || i >= len(b.data) {
		return 0, fmt.Errorf("%w: %d (length %d)", ErrIndex, i, len(b.data))
	}
	return i, nil
}

// At returns the byte at index i.
func (b *ByteArray) At(i int) (byte, error) {
	i, err := b.index(i)
	if err != nil {
		return 0, err
	}
	return b.data[i], nil
}

// SetAt replaces the byte at index i.
func (b *ByteArray) SetAt(i int, v byte) error {
	i, err := b.index(i)
	if err != nil {
		return err
	}
	b.data[i] = v
	return nil
}

// DelAt removes the byte at index i.
func (b *ByteArray) DelAt(i int) error {
	i, err := b.index(i)
	if err != nil {
		return err
	}
	b.data = append(b.data[:i], b.data[i+1:]...)
	return nil
}

func (b *ByteArray) Contains(v byte) bool {
	return bytes.IndexByte(b.data, v) >= 0
}

// All iterates over indexes and bytes.
func (b *ByteArray) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, v := range b.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether other holds the same bytes. other may be any
// Sequence or a []byte.
func (b *ByteArray) Equal(other any) bool {
	switch o := other.(type) {
	case Sequence:
		return bytes.Equal(b.data, o.Bytes())
	case []byte:
		return bytes.Equal(b.data, o)
	}
	return false
}

// Compare orders b and other lexicographically.
func (b *ByteArray) Compare(other Sequence) int {
	return bytes.Compare(b.data, other.Bytes())
}

func (b *ByteArray) String() string {
	return fmt.Sprintf("bytearray(%q)", b.data)
}

// Hex returns two lowercase hex digits per byte joined by sep.
func (b *ByteArray) Hex(sep string) string {
	parts := make([]string, len(b.data))
	for i, v := range b.data {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, sep)
}
