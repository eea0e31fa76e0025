package calculator

import "errors"

var (
	// ErrInvalidOperation indicates an operation name outside the supported set.
	ErrInvalidOperation = errors.New("calculator.invalid_operation")

	// ErrDivisionByZero indicates a divide call with a zero divisor.
	ErrDivisionByZero = errors.New("calculator.division_by_zero")

	// ErrResultOutOfRange indicates the result overflowed to an infinity or NaN.
	ErrResultOutOfRange = errors.New("calculator.result_out_of_range")
)

// IsInvalidArgument reports whether err was caused by the caller's input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidOperation) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrResultOutOfRange)
}
