// Package validator provides small, composable validation rules.
//
// A Rule pairs a check with the error reported when the check fails. Apply
// evaluates every rule and returns ValidationErrors listing all failures, so a
// caller can report every invalid field at once:
//
//	err := validator.Apply(
//		validator.RequiredString("session_id", req.SessionID),
//		validator.NotNil("a", req.A),
//		validator.Finite("b", req.B),
//	)
//	if err != nil {
//		return err
//	}
package validator
