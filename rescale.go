package decimal128

import "fmt"

// Rescale shifts the decimal point of v by exponent digits: a positive
// exponent appends |exponent| trailing zero digits to the unscaled
// magnitude (multiplying by 10^exponent), and a negative exponent drops
// |exponent| trailing digits, rounding the result half up away from zero
// (spec.md section 4.6 and section 9's resolution of the rounding Open
// Question: rescale rounds on base-10 digits, unlike [ShiftRight]'s
// bit-level sticky rounding).
//
// Because no representable magnitude has more than 38 decimal digits, any
// exponent <= -MaxPrecision-1 always rounds to zero and is handled without
// inspecting v.
func Rescale(v UnscaledDecimal128, exponent int) (UnscaledDecimal128, error) {
	switch {
	case exponent == 0:
		return v, nil
	case exponent > 0:
		return rescaleUp(v, exponent)
	case exponent <= -(MaxPrecision + 1):
		return Zero(), nil
	default:
		return rescaleDown(v, -exponent), nil
	}
}

// rescaleUp appends digits trailing zero digits to v's magnitude. Zero
// rescales to zero regardless of digits, since the digit-count bound below
// only limits how large a nonzero magnitude's result can grow.
func rescaleUp(v UnscaledDecimal128, digits int) (UnscaledDecimal128, error) {
	if v.mag.isZero() {
		return Zero(), nil
	}
	if digits > MaxPrecision {
		return UnscaledDecimal128{}, fmt.Errorf("rescaling %v by %d: %w", v, digits, ErrOverflow)
	}
	wide := multiply256Destructive(limbsFromU128(v.mag), limbsFromU128(pow10mag[digits]))
	if limbsLen(wide[4:]) != 0 {
		return UnscaledDecimal128{}, fmt.Errorf("rescaling %v by %d: %w", v, digits, ErrOverflow)
	}
	mag := u128FromLimbs(wide[:4])
	if mag.cmp(MaxUnscaled.mag) > 0 {
		return UnscaledDecimal128{}, fmt.Errorf("rescaling %v by %d: %w", v, digits, ErrOverflow)
	}
	return newUnsafe(v.neg, mag), nil
}

// rescaleDown drops digits trailing decimal digits from v's magnitude,
// rounding half up away from zero. digits is in [1, MaxPrecision].
func rescaleDown(v UnscaledDecimal128, digits int) UnscaledDecimal128 {
	divisor := pow10mag[digits]
	numerArr := limbsFromU128(v.mag)
	denomArr := limbsFromU128(divisor)
	qLimbs, rLimbs := divideLimbs(trimLimbs(numerArr[:]), trimLimbs(denomArr[:]))

	quo, _ := magFromLimbs(qLimbs)
	rem, _ := magFromLimbs(rLimbs)

	doubled, carry := rem.add(rem)
	if carry != 0 || doubled.cmp(divisor) >= 0 {
		quo, _ = quo.add(u128{lo: 1})
	}
	return newUnsafe(v.neg, quo)
}

// Overflows reports whether v's magnitude needs more than precision
// decimal digits to represent exactly.
func Overflows(v UnscaledDecimal128, precision int) bool {
	if precision < 0 {
		return true
	}
	if precision > MaxPrecision {
		return false
	}
	return v.mag.cmp(pow10mag[precision]) >= 0
}

// ThrowIfOverflows returns [ErrOverflow] if v's magnitude needs more than
// precision decimal digits, and nil otherwise.
func ThrowIfOverflows(v UnscaledDecimal128, precision int) error {
	if Overflows(v, precision) {
		return fmt.Errorf("value %v exceeds %d digits of precision: %w", v, precision, ErrOverflow)
	}
	return nil
}
