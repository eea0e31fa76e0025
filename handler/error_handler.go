package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/statetools/binder"
	"github.com/dmitrymomot/statetools/pkg/logger"
	"github.com/dmitrymomot/statetools/pkg/requestid"
	"github.com/dmitrymomot/statetools/pkg/validator"
)

const internalErrorMessage = "An error occurred processing your request"

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
}

func (i ErrorInfo) detail() *ErrorDetail {
	return &ErrorDetail{
		Code:    i.Code,
		Message: i.Message,
		Details: i.Details,
	}
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// classifyError maps err to a status code and client-safe error body.
// Unknown errors never leak their text to the client.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    internalErrorMessage,
	}

	var (
		httpErr       HTTPError
		validationErr validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validationErr):
		info.StatusCode = http.StatusBadRequest
		info.Code = ErrBadRequest.Key
		info.Message = validationErr.Error()
		info.Details = validationErr.Fields()
		if errors.As(err, &httpErr) {
			info.StatusCode = httpErr.Code
			info.Code = httpErr.Key
		}

	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = httpErr.Text()

	case errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusUnsupportedMediaType
		info.Code = ErrUnsupportedMediaType.Key
		info.Message = err.Error()

	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidQuery):
		info.StatusCode = http.StatusBadRequest
		info.Code = ErrBadRequest.Key
		info.Message = err.Error()
	}

	info.LogLevel = slog.LevelError
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	}

	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		logger.StatusCode(info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the JSON error handler used by every endpoint.
// It writes the {"error": {...}} envelope, adds the request id as meta and
// logs client errors at WARN and server errors at ERROR.
// Configure this once in main.go and pass it to all routers.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		var opts []JSONOption
		if id := requestid.FromContext(ctx.Request().Context()); id != "" {
			opts = append(opts, WithJSONMeta(map[string]any{"request_id": id}))
		}

		resp := &jsonResponse{status: info.StatusCode, body: JSONResponse{Error: info.detail()}}
		for _, opt := range opts {
			opt(resp)
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
