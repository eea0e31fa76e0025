// Package handler provides type-safe HTTP handlers with pluggable request
// binding, decorators and a JSON error envelope.
//
// A handler is a generic function of a context and a bound request value:
//
//	type CreateRequest struct {
//		Name string `json:"name"`
//	}
//
//	create := func(ctx handler.Context, req CreateRequest) handler.Response {
//		if req.Name == "" {
//			return handler.Error(handler.ErrBadRequest.WithMessage("name is required"))
//		}
//		return handler.JSON(item, handler.WithJSONStatus(http.StatusCreated))
//	}
//
//	errorHandler := handler.NewErrorHandler(log)
//	r.Post("/items", handler.Wrap(create,
//		handler.WithBinders[handler.Context, CreateRequest](binder.BindJSON()),
//		handler.WithErrorHandler[handler.Context, CreateRequest](errorHandler),
//	))
//
// Every response body follows one envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// Errors returned through Error, binder failures, and render failures reach
// the error handler, which maps them to a status code:
//
//   - HTTPError keeps its Code and Key.
//   - validator.ValidationErrors become 400 bad_request with per-field details.
//   - binder.ErrInvalidJSON and binder.ErrInvalidQuery become 400.
//   - binder.ErrUnsupportedMediaType becomes 415.
//   - Anything else becomes 500 with a generic message.
package handler
