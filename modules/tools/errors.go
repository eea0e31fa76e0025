package tools

import (
	"errors"

	"github.com/dmitrymomot/statetools/handler"
	"github.com/dmitrymomot/statetools/pkg/calculator"
	"github.com/dmitrymomot/statetools/pkg/session"
)

var (
	errSessionNotFound = handler.ErrNotFound.WithKey("session_not_found").WithMessage("Session not found")
	errTokenRequired   = handler.ErrUnauthorized.WithMessage("Bearer token required")
)

// toHTTPError maps domain errors to client errors. Unknown errors pass
// through and become 500 in the error handler.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound.Wrap(err)
	case calculator.IsInvalidArgument(err):
		return handler.ErrBadRequest.WithMessage(invalidArgumentMessage(err)).Wrap(err)
	case errors.Is(err, session.ErrStoreClosed):
		return handler.ErrServiceUnavailable.Wrap(err)
	}
	return err
}

func invalidArgumentMessage(err error) string {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return "Cannot divide by zero"
	case errors.Is(err, calculator.ErrResultOutOfRange):
		return "Result is not a finite number"
	}
	return "Invalid operation"
}
