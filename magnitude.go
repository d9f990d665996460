package decimal128

import "math/bits"

// u128 is a plain unsigned 128-bit magnitude, represented as two 64-bit
// halves. It carries no sign and is not range-checked against
// [MaxUnscaled]; range checks are applied by the callers in add.go,
// multiply.go, and shift.go once a candidate magnitude has been computed.
//
// u128 is the workhorse type behind [UnscaledDecimal128]'s additive and
// shift kernels. The multiplicative and division kernels operate one level
// lower, on limbs of 32 bits, because their intermediate products and
// normalized divisors can temporarily exceed 128 bits.
type u128 struct {
	lo, hi uint64
}

// isZero reports whether x is the zero magnitude.
func (x u128) isZero() bool {
	return x.lo == 0 && x.hi == 0
}

// cmp compares x and y as unsigned 128-bit integers and returns -1, 0, or 1.
func (x u128) cmp(y u128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

// add calculates x + y and reports whether the 128-bit sum overflowed
// (i.e. whether a 129th bit would have been set).
func (x u128) add(y u128) (z u128, carry uint64) {
	var c0, c1 uint64
	z.lo, c0 = bits.Add64(x.lo, y.lo, 0)
	z.hi, c1 = bits.Add64(x.hi, y.hi, c0)
	return z, c1
}

// sub calculates x - y, assuming x >= y, and reports the borrow out of the
// top bit (non-zero only when x < y).
func (x u128) sub(y u128) (z u128, borrow uint64) {
	var b0, b1 uint64
	z.lo, b0 = bits.Sub64(x.lo, y.lo, 0)
	z.hi, b1 = bits.Sub64(x.hi, y.hi, b0)
	return z, b1
}

// lsh shifts x left by n bits (0 <= n < 128) as a pure bit pattern,
// discarding bits shifted out past bit 127. Used by the unchecked
// [ShiftLeft] primitive and internally wherever a checked shift has
// already bounded the result.
func (x u128) lsh(n uint) u128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return u128{
			lo: x.lo << n,
			hi: x.hi<<n | x.lo>>(64-n),
		}
	case n < 128:
		return u128{lo: 0, hi: x.lo << (n - 64)}
	default:
		return u128{}
	}
}

// rsh shifts x right by n bits, returning the shifted value and two
// sticky words that are non-zero exactly when a non-zero bit was pushed
// out past bit 0. The bit layout of the sticky words does not preserve
// the discarded bits' positions, so callers test
// stickyHi != 0 || stickyLo != 0. For n >= 128 the result is zero and
// all of x is reported as discarded.
func (x u128) rsh(n uint) (z u128, stickyLo, stickyHi uint64) {
	switch {
	case n == 0:
		return x, 0, 0
	case n < 64:
		z = u128{
			lo: x.lo>>n | x.hi<<(64-n),
			hi: x.hi >> n,
		}
		stickyLo = x.lo << (64 - n)
		return z, stickyLo, 0
	case n < 128:
		m := n - 64
		z = u128{lo: x.hi >> m, hi: 0}
		if m == 0 {
			stickyLo = x.lo
		} else {
			stickyLo = x.lo | x.hi<<(64-m)
		}
		return z, stickyLo, 0
	default:
		return u128{}, x.lo, x.hi
	}
}

// bitLen returns the number of bits needed to represent x, or 0 if x is zero.
func (x u128) bitLen() int {
	if x.hi != 0 {
		return 64 + bits.Len64(x.hi)
	}
	return bits.Len64(x.lo)
}
