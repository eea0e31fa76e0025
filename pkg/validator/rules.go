package validator

import (
	"math"
	"strings"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// NotNil validates that an optional value was provided.
func NotNil[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// Finite validates that a float is neither NaN nor infinite. A nil pointer passes;
// combine with NotNil when the value is required.
func Finite(field string, value *float64) Rule {
	return Rule{
		Check: func() bool {
			return value == nil || !(math.IsNaN(*value) || math.IsInf(*value, 0))
		},
		Error: ValidationError{Field: field, Message: "must be a finite number"},
	}
}
