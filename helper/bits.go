package helper

import (
	"fmt"

	"github.com/pboyd/reclass"
)

func checkBits(bits uint) error {
	if bits == 0 || bits > 63 {
		return fmt.Errorf("%w: bit width must be between 1 and 63, got %d", reclass.ErrValue, bits)
	}
	return nil
}

// UnsignedToSigned reinterprets num as a bits-wide two's complement number.
func UnsignedToSigned(num uint64, bits uint) (int64, error) {
	if err := checkBits(bits); err != nil {
		return 0, err
	}

	limit := uint64(1) << bits
	if num >= limit {
		return 0, fmt.Errorf("%w: unsigned number %d does not fit in %d bits", reclass.ErrValue, num, bits)
	}

	if num&(limit>>1) != 0 {
		return int64(num) - int64(limit), nil
	}
	return int64(num), nil
}

// SignedToUnsigned returns the bits-wide two's complement encoding of num.
func SignedToUnsigned(num int64, bits uint) (uint64, error) {
	if err := checkBits(bits); err != nil {
		return 0, err
	}

	half := int64(1) << (bits - 1)
	if num < -half || num >= half {
		return 0, fmt.Errorf("%w: signed number %d does not fit in %d bits", reclass.ErrValue, num, bits)
	}

	if num < 0 {
		return uint64(num + 2*half), nil
	}
	return uint64(num), nil
}

// WrapOverflow wraps num around the range of a bits-wide integer, the way
// the number would overflow or underflow in a register of that width.
func WrapOverflow(num int64, bits uint, signed bool) (int64, error) {
	if err := checkBits(bits); err != nil {
		return 0, err
	}

	mask := uint64(1)<<bits - 1
	v := uint64(num) & mask
	if signed && v&(1<<(bits-1)) != 0 {
		// Sign extend
		return int64(v | ^mask), nil
	}
	return int64(v), nil
}
