package dual

import "errors"

// Error kinds surfaced by dual arithmetic. All are synchronous and
// non-retryable; operations return them instead of producing a partial
// result. Callers match with errors.Is since operations wrap these with
// an operation-name prefix.
var (
	// ErrDivisionByZero is returned when a denominator's value is exactly
	// zero. The engine fails fast rather than propagating IEEE Inf/NaN
	// through both the value and derivative channels.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDimensionMismatch is returned when vector dual operands carry
	// gradients of different lengths.
	ErrDimensionMismatch = errors.New("gradient dimension mismatch")

	// ErrUnsupportedExponent is returned by Pow for exponents outside the
	// supported non-negative integer range.
	ErrUnsupportedExponent = errors.New("unsupported exponent")
)
