// Package calculator is a stateful arithmetic tool that keeps a running
// history in the caller's session.
//
// Every call names a session. The service resolves it through the session
// store, computes the result, rejects invalid input before touching any state,
// and appends a Record to the session's history under HistoryKey. The
// response carries the result and the number of records in the history.
//
//	svc := calculator.NewService(store)
//	res, err := svc.Calculate(ctx, calculator.Input{
//		SessionID: id,
//		Operation: calculator.OpAdd,
//		A:         2,
//		B:         3,
//	})
//	// res.Result == 5, res.HistoryCount == 1
//
// Unknown, expired and evicted sessions all return session.ErrSessionNotFound.
// ErrInvalidOperation, ErrDivisionByZero and ErrResultOutOfRange report caller
// mistakes; IsInvalidArgument groups them.
package calculator
