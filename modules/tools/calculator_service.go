package tools

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/statetools/binder"
	"github.com/dmitrymomot/statetools/handler"
	"github.com/dmitrymomot/statetools/pkg/calculator"
	"github.com/dmitrymomot/statetools/pkg/session"
	"github.com/dmitrymomot/statetools/pkg/validator"
)

// CalculatorService exposes the calculator tool over HTTP.
type CalculatorService struct {
	calc         *calculator.Service
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewCalculatorService creates the calculator endpoints.
func NewCalculatorService(
	calc *calculator.Service,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
) *CalculatorService {
	return &CalculatorService{
		calc:         calc,
		logger:       log,
		errorHandler: errorHandler,
	}
}

// Handle serves POST / and GET /history relative to the mount point.
func (s *CalculatorService) Handle() http.Handler {
	r := chi.NewRouter()

	// Query parameters first, then an optional JSON body overriding them.
	r.Post("/", handler.Wrap(s.calculate,
		handler.WithBinders[handler.Context, CalculateRequest](
			binder.BindQuery(),
			binder.BindJSON(),
		),
		handler.WithErrorHandler[handler.Context, CalculateRequest](s.errorHandler),
		handler.WithDecorators(logToolCall[CalculateRequest](s.logger, calculator.ToolName)),
	))

	r.Get("/history", handler.Wrap(s.history,
		handler.WithBinders[handler.Context, HistoryRequest](binder.BindQuery()),
		handler.WithErrorHandler[handler.Context, HistoryRequest](s.errorHandler),
		handler.WithDecorators(logToolCall[HistoryRequest](s.logger, calculator.HistoryToolName)),
	))

	return r
}

// CalculateRequest is accepted from the query string and/or a JSON body.
type CalculateRequest struct {
	SessionID string   `query:"session_id" json:"session_id"`
	Operation string   `query:"operation" json:"operation"`
	A         *float64 `query:"a" json:"a"`
	B         *float64 `query:"b" json:"b"`
}

func (r CalculateRequest) sessionID() string { return r.SessionID }

func (r CalculateRequest) validate() error {
	return validator.Apply(
		validator.RequiredString("session_id", r.SessionID),
		validator.RequiredString("operation", r.Operation),
		validator.NotNil("a", r.A),
		validator.NotNil("b", r.B),
		validator.Finite("a", r.A),
		validator.Finite("b", r.B),
	)
}

func (s *CalculatorService) calculate(ctx handler.Context, req CalculateRequest) handler.Response {
	if err := req.validate(); err != nil {
		return handler.Error(err)
	}

	op, opErr := calculator.ParseOperation(req.Operation)

	// Calculate resolves the session before it looks at the operation, so an
	// unknown session is reported even when the operation is invalid too.
	res, err := s.calc.Calculate(ctx, calculator.Input{
		SessionID: req.SessionID,
		Operation: op,
		A:         *req.A,
		B:         *req.B,
	})
	if opErr != nil && !errors.Is(err, session.ErrSessionNotFound) {
		err = opErr
	}
	if err != nil {
		return handler.Error(toHTTPError(err))
	}

	return handler.JSON(res)
}

// HistoryRequest selects the session whose history is returned.
type HistoryRequest struct {
	SessionID string `query:"session_id"`
}

func (r HistoryRequest) sessionID() string { return r.SessionID }

// HistoryResponse lists calculations oldest first.
type HistoryResponse struct {
	History []calculator.Record `json:"history"`
}

func (s *CalculatorService) history(ctx handler.Context, req HistoryRequest) handler.Response {
	if err := validator.Apply(validator.RequiredString("session_id", req.SessionID)); err != nil {
		return handler.Error(err)
	}

	records, err := s.calc.History(ctx, req.SessionID)
	if err != nil {
		return handler.Error(toHTTPError(err))
	}

	return handler.JSON(HistoryResponse{History: records})
}
