package decimal128

import "fmt"

// Add returns a + b. It returns [ErrOverflow] if the magnitude of the
// exact sum exceeds [MaxUnscaled].
//
// Same-sign operands add magnitudes with carry propagation across the two
// 64-bit halves of the magnitude; opposite-sign operands subtract the
// smaller magnitude from the larger and take the sign of the larger
// operand (spec.md section 4.3).
func Add(a, b UnscaledDecimal128) (UnscaledDecimal128, error) {
	if a.neg == b.neg {
		sum, carry := a.mag.add(b.mag)
		if carry != 0 || sum.cmp(MaxUnscaled.mag) > 0 {
			return UnscaledDecimal128{}, fmt.Errorf("adding %v + %v: %w", a, b, ErrOverflow)
		}
		return newUnsafe(a.neg, sum), nil
	}

	switch a.mag.cmp(b.mag) {
	case 0:
		return Zero(), nil
	case 1:
		diff, _ := a.mag.sub(b.mag)
		return newUnsafe(a.neg, diff), nil
	default:
		diff, _ := b.mag.sub(a.mag)
		return newUnsafe(b.neg, diff), nil
	}
}

// AddWithOverflow computes a + b modulo 2^127 (wrapping within the
// sign-magnitude space) and returns the signed overflow count k in
// {-1, 0, +1} such that the true signed sum equals decode(out) +
// k * 2^127. Unlike [Add], it never signals an error: its purpose is to
// let callers tolerate and aggregate overflow across a long sequence of
// additions and only check for a non-zero total at the end.
func AddWithOverflow(a, b UnscaledDecimal128) (out UnscaledDecimal128, overflow int) {
	if a.neg == b.neg {
		sum, _ := a.mag.add(b.mag)
		wrapped := sum.hi>>63 != 0
		sum.hi &^= 1 << 63
		out = newUnsafe(a.neg, sum)
		if wrapped {
			if a.neg {
				return out, -1
			}
			return out, 1
		}
		return out, 0
	}

	switch a.mag.cmp(b.mag) {
	case 0:
		return Zero(), 0
	case 1:
		diff, _ := a.mag.sub(b.mag)
		return newUnsafe(a.neg, diff), 0
	default:
		diff, _ := b.mag.sub(a.mag)
		return newUnsafe(b.neg, diff), 0
	}
}

// Negate returns -v. Negating zero returns zero (the sign bit is never
// set on a zero magnitude).
func Negate(v UnscaledDecimal128) UnscaledDecimal128 {
	return newUnsafe(!v.neg, v.mag)
}

// Compare returns -1, 0, or +1 as a is less than, equal to, or greater
// than b, imposing a total order on signed decimal values consistent
// with [UnscaledDecimal128.ToBigInt].
func Compare(a, b UnscaledDecimal128) int {
	switch {
	case a.neg && !b.neg:
		return -1
	case !a.neg && b.neg:
		return 1
	case !a.neg:
		return a.mag.cmp(b.mag)
	default:
		return b.mag.cmp(a.mag)
	}
}
