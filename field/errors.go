package field

import "errors"

var (
	// ErrInvalidParameters is returned when p is not prime, n is not positive,
	// or p^n exceeds the configured maximum order.
	ErrInvalidParameters = errors.New("invalid field parameters")

	// ErrInvalidPolynomial is returned when the supplied polynomial does not
	// generate all p^n-1 nonzero elements.
	ErrInvalidPolynomial = errors.New("invalid polynomial")

	// ErrFieldMismatch is returned when elements of different fields are combined.
	ErrFieldMismatch = errors.New("elements belong to different fields")

	// ErrDivisionByZero is returned when dividing by, or inverting, zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrElementNotInField is returned when a coordinate vector has no
	// exponent in the field table.
	ErrElementNotInField = errors.New("element not in field")

	// ErrInvalidBasis is returned when a proposed basis is not self-dual.
	ErrInvalidBasis = errors.New("invalid self-dual basis")

	// ErrIndexOutOfRange is returned when indexing outside [0, p^n).
	ErrIndexOutOfRange = errors.New("index out of range")
)
