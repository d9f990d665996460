package decimal128

import (
	"fmt"
	"math"
)

// FromInt64 converts a signed 64-bit integer to an [UnscaledDecimal128].
// It always succeeds: every int64 fits comfortably within the 127-bit
// magnitude this type can hold.
func FromInt64(n int64) UnscaledDecimal128 {
	if n >= 0 {
		return newUnsafe(false, u128{lo: uint64(n)})
	}
	// n == math.MinInt64 overflows a naive negation, so widen first.
	mag := uint64(-(n + 1)) + 1
	return newUnsafe(true, u128{lo: mag})
}

// ToInt64 converts v to a signed 64-bit integer. It returns [ErrOverflow]
// if the magnitude of v does not fit in 63 bits (i.e. does not fit in an
// int64 alongside its sign).
func (v UnscaledDecimal128) ToInt64() (int64, error) {
	if v.mag.hi != 0 {
		return 0, fmt.Errorf("converting %v to int64: %w", v, ErrOverflow)
	}
	if v.neg {
		if v.mag.lo > uint64(math.MaxInt64)+1 {
			return 0, fmt.Errorf("converting %v to int64: %w", v, ErrOverflow)
		}
		if v.mag.lo == uint64(math.MaxInt64)+1 {
			return math.MinInt64, nil
		}
		return -int64(v.mag.lo), nil
	}
	if v.mag.lo > uint64(math.MaxInt64) {
		return 0, fmt.Errorf("converting %v to int64: %w", v, ErrOverflow)
	}
	return int64(v.mag.lo), nil
}
