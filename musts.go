package decimal128

import "fmt"

// MustAdd is like [Add] but panics if a or b cannot be added without
// overflow. It is intended for package-level initialization of constants
// known by construction to be safe.
func MustAdd(a, b UnscaledDecimal128) UnscaledDecimal128 {
	v, err := Add(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", a, b, err))
	}
	return v
}

// MustMultiply is like [Multiply] but panics on error.
func MustMultiply(a, b UnscaledDecimal128) UnscaledDecimal128 {
	v, err := Multiply(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustMultiply(%v, %v) failed: %v", a, b, err))
	}
	return v
}

// MustDivide is like [Divide] but panics on error.
func MustDivide(dividend UnscaledDecimal128, dividendRescale int, divisor UnscaledDecimal128, divisorRescale int) (UnscaledDecimal128, UnscaledDecimal128) {
	q, r, err := Divide(dividend, dividendRescale, divisor, divisorRescale)
	if err != nil {
		panic(fmt.Sprintf("MustDivide(%v, %v) failed: %v", dividend, divisor, err))
	}
	return q, r
}

// MustRescale is like [Rescale] but panics on error.
func MustRescale(v UnscaledDecimal128, exponent int) UnscaledDecimal128 {
	r, err := Rescale(v, exponent)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v, %d) failed: %v", v, exponent, err))
	}
	return r
}
