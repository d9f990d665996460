package decimal128

import (
	"fmt"
	"math/bits"
)

// Divide computes dividend / divisor, truncating toward zero, after first
// rescaling each operand by a power of ten: the true mathematical inputs
// are dividend * 10^dividendRescale and divisor * 10^divisorRescale. This
// lets a caller carry extra digits of precision into the integer division
// (for example to compute a quotient to more fractional digits than the
// operands' own scales would otherwise allow) without a separate
// multiplication pass. dividendRescale and divisorRescale must be in
// [0, MaxPrecision].
//
// It returns [ErrDivisionByZero] if divisor is zero, and [ErrOverflow] if
// the quotient or remainder's magnitude exceeds [MaxUnscaled]. The
// remainder takes the sign of the dividend (spec.md section 4.5), matching
// Go's and C's integer division semantics.
func Divide(dividend UnscaledDecimal128, dividendRescale int, divisor UnscaledDecimal128, divisorRescale int) (quotient, remainder UnscaledDecimal128, err error) {
	if divisor.mag.isZero() {
		return UnscaledDecimal128{}, UnscaledDecimal128{}, fmt.Errorf("dividing %v / %v: %w", dividend, divisor, ErrDivisionByZero)
	}
	if dividendRescale < 0 || dividendRescale > MaxPrecision || divisorRescale < 0 || divisorRescale > MaxPrecision {
		return UnscaledDecimal128{}, UnscaledDecimal128{}, fmt.Errorf("dividing %v / %v: rescale out of range", dividend, divisor)
	}

	numer := rescaledLimbs(dividend.mag, dividendRescale)
	denom := rescaledLimbs(divisor.mag, divisorRescale)

	qLimbs, rLimbs := divideLimbs(numer, denom)

	qMag, ok := magFromLimbs(qLimbs)
	if !ok || qMag.cmp(MaxUnscaled.mag) > 0 {
		return UnscaledDecimal128{}, UnscaledDecimal128{}, fmt.Errorf("dividing %v / %v: %w", dividend, divisor, ErrOverflow)
	}
	rMag, ok := magFromLimbs(rLimbs)
	if !ok || rMag.cmp(MaxUnscaled.mag) > 0 {
		return UnscaledDecimal128{}, UnscaledDecimal128{}, fmt.Errorf("dividing %v / %v: %w", dividend, divisor, ErrOverflow)
	}

	quotient = newUnsafe(dividend.neg != divisor.neg, qMag)
	remainder = newUnsafe(dividend.neg, rMag)
	return quotient, remainder, nil
}

// rescaledLimbs returns the little-endian limbs of mag * 10^k, trimmed of
// leading zero limbs.
func rescaledLimbs(mag u128, k int) []uint32 {
	base := limbsFromU128(mag)
	if k == 0 {
		return trimLimbs(base[:])
	}
	wide := multiply256Destructive(base, limbsFromU128(pow10mag[k]))
	return trimLimbs(wide[:])
}

// magFromLimbs packs up to four little-endian limbs into a u128, reporting
// false if any higher limb is non-zero (the value does not fit in 128 bits).
func magFromLimbs(l []uint32) (u128, bool) {
	for i := 4; i < len(l); i++ {
		if l[i] != 0 {
			return u128{}, false
		}
	}
	var padded [4]uint32
	copy(padded[:], l)
	return u128FromLimbs(padded[:]), true
}

// trimLimbs returns the prefix of x up to its highest non-zero limb.
func trimLimbs(x []uint32) []uint32 {
	return x[:limbsLen(x)]
}

// divideLimbs computes numer / denom over little-endian limb slices,
// returning trimmed quotient and remainder limbs. denom must be non-empty
// (non-zero); the caller is responsible for the division-by-zero check.
//
// This is Knuth's Algorithm D (TAOCP vol. 2, section 4.3.1), grounded on
// the word-at-a-time shape of the standard library's own from-scratch
// big.Int division fallback: normalize the divisor so its top limb's high
// bit is set, estimate each quotient limb from the top two (resp. three)
// limbs of the remaining dividend and the divisor's top limb(s), correct
// the estimate down by at most 2, multiply-and-subtract, and add the
// divisor back on the rare occasion the estimate was still one too high.
func divideLimbs(numerIn, denom []uint32) (quotient, remainder []uint32) {
	numer := trimLimbs(numerIn)
	n := len(denom)

	if n == 1 {
		return divideLimbsBySingle(numer, denom[0])
	}

	m := len(numer) - n
	if m < 0 {
		rem := make([]uint32, len(numer))
		copy(rem, numer)
		return nil, rem
	}

	s := uint(0)
	if top := bits.Len32(denom[n-1]); top < 32 {
		s = uint(32 - top)
	}

	vn := make([]uint32, n)
	shlVU(vn, denom, s)

	un := make([]uint32, len(numer)+1)
	topOut := shlVU(un[:len(numer)], numer, s)
	un[len(numer)] = topOut

	q := make([]uint32, m+1)
	for j := m; j >= 0; j-- {
		numerHi := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		var qhat, rhat uint64
		if un[j+n] == vn[n-1] {
			qhat = 0xFFFFFFFF
			rhat = numerHi - qhat*uint64(vn[n-1])
		} else {
			qhat = numerHi / uint64(vn[n-1])
			rhat = numerHi % uint64(vn[n-1])
		}
		for rhat <= 0xFFFFFFFF && qhat*uint64(vn[n-2]) > rhat<<32+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
		}

		prod := make([]uint32, n+1)
		carry := mulAddVWW(prod[:n], vn, uint32(qhat), 0)
		prod[n] = carry

		window := un[j : j+n+1]
		borrow := subVV(window, window, prod)
		if borrow != 0 {
			qhat--
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
		}
		q[j] = uint32(qhat)
	}

	if s != 0 {
		shrVU(un[:n], un[:n], s)
	}
	return trimLimbs(q), trimLimbs(un[:n])
}

// divideLimbsBySingle is the fast path for a one-limb divisor: a single
// pass of schoolbook long division needs no normalization or qhat
// correction.
func divideLimbsBySingle(numer []uint32, d uint32) (quotient, remainder []uint32) {
	q := make([]uint32, len(numer))
	var r uint64
	for i := len(numer) - 1; i >= 0; i-- {
		cur := r<<32 | uint64(numer[i])
		q[i] = uint32(cur / uint64(d))
		r = cur % uint64(d)
	}
	return trimLimbs(q), trimLimbs([]uint32{uint32(r)})
}
