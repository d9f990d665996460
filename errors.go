package decimal128

import "errors"

// ErrOverflow indicates that the mathematically correct result of an
// operation has a magnitude exceeding [MaxUnscaled], or that a conversion
// target cannot hold the value.
var ErrOverflow = errors.New("decimal overflow")

// ErrDivisionByZero indicates that [Divide] was called with a rescaled
// divisor of zero.
var ErrDivisionByZero = errors.New("division by zero")
