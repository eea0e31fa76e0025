// Package binder populates request structs from HTTP requests.
//
// A binder has the signature func(*http.Request, any) error and is passed to
// handler.Wrap through handler.WithBinders. Binders run in order, so later
// sources override earlier ones:
//
//	type CalculateRequest struct {
//		SessionID string   `query:"session_id" json:"session_id"`
//		A         *float64 `query:"a" json:"a"`
//	}
//
//	h := handler.Wrap(calculate, handler.WithBinders(
//		binder.BindQuery(),
//		binder.BindJSON(),
//	))
//
// A binder returns ErrBinderNotApplicable when the request carries nothing it
// can read (for example BindJSON on a request without a body). Wrap skips
// such binders instead of failing the request.
package binder
