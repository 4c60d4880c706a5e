// Package hexbytes provides HexBytes, a mutable byte sequence that is read
// and written through two-digit hex strings.
//
// HexBytes derives bytearray.ByteArray through reclass: every inherited
// operation that builds a new sequence returns a *HexBytes, and Extend
// returns a new sequence instead of growing the receiver. Methods that
// change the sequence in place (Append, Insert, SetAt, ...) still do.
package hexbytes

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pboyd/reclass"
	"github.com/pboyd/reclass/bytearray"
)

// HexBytes is a mutable sequence of bytes. Raw integer access is available
// through the embedded ByteArray (At, SetAt); Get and Set work with hex
// strings.
type HexBytes struct {
	bytearray.ByteArray
}

// New returns a HexBytes holding a copy of data.
func New(data ...byte) *HexBytes {
	return &HexBytes{ByteArray: *bytearray.New(data...)}
}

// FromText returns the ASCII codes of text. It fails on non-ASCII text.
//
//	FromText("ABCD") -> [41, 42, 43, 44]
func FromText(text string) (*HexBytes, error) {
	for _, r := range text {
		if r >= utf8.RuneSelf {
			return nil, fmt.Errorf("%w: cannot convert non-ASCII text: %q", reclass.ErrValue, text)
		}
	}
	return New([]byte(text)...), nil
}

// IsHexByte reports whether s is the hex representation of one byte:
// exactly two hex digits once whitespace is removed. Case does not matter.
// Whitespace may appear between the digits, so "a 0" is accepted.
func IsHexByte(s string) bool {
	digits := hexDigits(s)
	return len(digits) == 2 && isHexDigit(digits[0]) && isHexDigit(digits[1])
}

// RequireHexByte returns an error wrapping reclass.ErrType if v is not a
// string and one wrapping reclass.ErrValue if it is not accepted by
// IsHexByte.
func RequireHexByte(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: invalid hex string: %v", reclass.ErrType, v)
	}
	if !IsHexByte(s) {
		return fmt.Errorf("%w: invalid hex string: %q", reclass.ErrValue, s)
	}
	return nil
}

func hexDigits(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), "")
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'F')
}

func parseHexByte(s string) (byte, error) {
	if err := RequireHexByte(s); err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(hexDigits(s), 16, 8)
	return byte(v), err
}

// Clone returns a deep copy of h.
func (h *HexBytes) Clone() *HexBytes {
	return &HexBytes{ByteArray: *h.ByteArray.Clone()}
}

// Get returns the byte at index i as two lowercase hex digits.
func (h *HexBytes) Get(i int) (string, error) {
	v, err := h.At(i)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02x", v), nil
}

// Set replaces the byte at index i with the byte s represents.
func (h *HexBytes) Set(i int, s string) error {
	v, err := parseHexByte(s)
	if err != nil {
		return err
	}
	return h.SetAt(i, v)
}

type padConfig struct {
	signExtend bool
}

// PadOption configures LeftPad.
type PadOption func(*padConfig)

// SignExtend makes LeftPad fill with 00 when the first byte is below 0x80
// and ff otherwise, treating the first byte as the most significant. The
// fill argument is ignored.
func SignExtend() PadOption {
	return func(cfg *padConfig) {
		cfg.signExtend = true
	}
}

// LeftPad returns h preceded by as many fill bytes as needed to reach width.
// fill may only be empty when SignExtend is given.
func (h *HexBytes) LeftPad(width int, fill string, opts ...PadOption) (*HexBytes, error) {
	var cfg padConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if fill == "" && !cfg.signExtend {
		return nil, fmt.Errorf("%w: a fill byte is required without sign extension", reclass.ErrValue)
	}

	return h.pad(width, fill, true, cfg.signExtend)
}

// RightPad returns h followed by as many fill bytes as needed to reach
// width.
func (h *HexBytes) RightPad(width int, fill string) (*HexBytes, error) {
	return h.pad(width, fill, false, false)
}

func (h *HexBytes) pad(width int, fill string, left, signExtend bool) (*HexBytes, error) {
	if signExtend {
		first, err := h.At(0)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot sign extend an empty sequence", reclass.ErrValue)
		}
		fill = "00"
		if first >= 0x80 {
			fill = "ff"
		}
	}

	v, err := parseHexByte(fill)
	if err != nil {
		return nil, err
	}

	if left {
		return h.RJust(width, v), nil
	}
	return h.LJust(width, v), nil
}

// String formats h as a list of hex bytes.
//
//	0x [a0, b1, c2]
func (h *HexBytes) String() string {
	return "0x [" + h.Hex(", ") + "]"
}
