package decimal128

// String returns the base-10 representation of v's signed unscaled
// integer value, with no decimal point (spec.md section 4.7 reserves
// placement of the decimal point to the caller, which tracks scale
// separately from this package).
func (v UnscaledDecimal128) String() string {
	return v.ToUnscaledString()
}

// ToUnscaledString is the named form of [UnscaledDecimal128.String],
// kept distinct so callers that also have a fmt.Stringer in scope for a
// scaled decimal type can call this one unambiguously.
func (v UnscaledDecimal128) ToUnscaledString() string {
	return v.ToBigInt().String()
}
