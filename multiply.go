package decimal128

import "fmt"

// Multiply returns a * b. It returns [ErrOverflow] if the exact product's
// magnitude exceeds [MaxUnscaled]. The product is formed as an 8-limb
// (256-bit) intermediate via schoolbook multiplication, then range-checked
// before being narrowed back to 128 bits (spec.md section 4.4).
func Multiply(a, b UnscaledDecimal128) (UnscaledDecimal128, error) {
	prod := multiply256Destructive(limbsFromU128(a.mag), limbsFromU128(b.mag))
	if limbsLen(prod[4:]) != 0 {
		return UnscaledDecimal128{}, fmt.Errorf("multiplying %v * %v: %w", a, b, ErrOverflow)
	}
	mag := u128FromLimbs(prod[:4])
	if mag.cmp(MaxUnscaled.mag) > 0 {
		return UnscaledDecimal128{}, fmt.Errorf("multiplying %v * %v: %w", a, b, ErrOverflow)
	}
	return newUnsafe(a.neg != b.neg, mag), nil
}

// MultiplyLong returns v * k for a plain signed 64-bit multiplier k. It
// converts k with [FromInt64] and computes the product through
// [Multiply], so it takes the same 128x128 path. It returns
// [ErrOverflow] on the same terms as [Multiply].
func MultiplyLong(v UnscaledDecimal128, k int64) (UnscaledDecimal128, error) {
	return Multiply(v, FromInt64(k))
}

// multiply256Destructive computes the full 256-bit product of two 128-bit
// magnitudes (each decomposed into four 32-bit limbs) via schoolbook
// multiplication, returning all eight result limbs little-endian. It is
// grounded on the accumulate-one-row-at-a-time shape of [addMulVVW]: each
// limb of x scales the whole of y and is added into the running total at
// the appropriate offset.
func multiply256Destructive(x, y [4]uint32) [8]uint32 {
	var z [8]uint32
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		carry := addMulVVW(z[i:i+4], y[:], xi)
		j := i + 4
		for carry != 0 {
			s := uint64(z[j]) + uint64(carry)
			z[j] = uint32(s)
			carry = uint32(s >> 32)
			j++
		}
	}
	return z
}
