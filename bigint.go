package decimal128

import (
	"fmt"
	"math/big"
)

// FromBigInt converts an arbitrary-precision integer to an
// [UnscaledDecimal128]. It returns [ErrOverflow] if the magnitude of n
// exceeds [MaxUnscaled].
func FromBigInt(n *big.Int) (UnscaledDecimal128, error) {
	mag := new(big.Int).Abs(n)
	if mag.Cmp(pow10big[MaxPrecision]) >= 0 {
		return UnscaledDecimal128{}, fmt.Errorf("converting %s to UnscaledDecimal128: %w", n, ErrOverflow)
	}
	neg := n.Sign() < 0
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(mag, mask64).Uint64()
	hi := new(big.Int).Rsh(mag, 64).Uint64()
	return newUnsafe(neg, u128{lo: lo, hi: hi}), nil
}

// MustFromBigInt is like [FromBigInt] but panics on error. It simplifies
// safe initialization of package-level constants from literals too large
// to express conveniently as int64.
func MustFromBigInt(n *big.Int) UnscaledDecimal128 {
	v, err := FromBigInt(n)
	if err != nil {
		panic(fmt.Sprintf("MustFromBigInt(%s) failed: %v", n, err))
	}
	return v
}

// ToBigInt converts v to an arbitrary-precision integer, exactly.
func (v UnscaledDecimal128) ToBigInt() *big.Int {
	mag := new(big.Int).SetUint64(v.mag.hi)
	mag.Lsh(mag, 64)
	mag.Or(mag, new(big.Int).SetUint64(v.mag.lo))
	if v.neg {
		mag.Neg(mag)
	}
	return mag
}
