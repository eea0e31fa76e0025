package calculator

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/statetools/pkg/logger"
	"github.com/dmitrymomot/statetools/pkg/session"
)

// HistoryKey is the data bag key holding the calculator history.
const HistoryKey = "calculator_history"

// Record is one successful calculation.
type Record struct {
	Operation Operation  `json:"operation"`
	Operands  [2]float64 `json:"operands"`
	Result    float64    `json:"result"`
	At        time.Time  `json:"at"`
}

// Input is a single calculator call.
type Input struct {
	SessionID string
	Operation Operation
	A         float64
	B         float64
}

// Result is the outcome of a successful call.
type Result struct {
	Result       float64 `json:"result"`
	HistoryCount int     `json:"history_count"`
}

// Service executes calculator calls against session state.
type Service struct {
	store  session.Store
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a calculator bound to a session store.
func NewService(store session.Store, opts ...Option) *Service {
	if store == nil {
		panic("calculator: session store is required")
	}

	s := &Service{
		store:  store,
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate resolves the session, computes the result and appends it to the
// session history. Invalid input is rejected before the history is touched.
func (s *Service) Calculate(ctx context.Context, in Input) (Result, error) {
	sess, ok := s.store.Get(ctx, in.SessionID)
	if !ok {
		return Result{}, session.ErrSessionNotFound
	}

	value, err := in.Operation.Apply(in.A, in.B)
	if err != nil {
		s.logger.DebugContext(ctx, "calculation rejected",
			logger.Tool("calculator"),
			logger.SessionID(sess.ID),
			logger.Error(err),
		)
		return Result{}, err
	}

	rec := Record{
		Operation: in.Operation,
		Operands:  [2]float64{in.A, in.B},
		Result:    value,
		At:        s.now().UTC(),
	}

	var count int
	err = session.Update(sess, HistoryKey, func(history *[]Record) error {
		*history = append(*history, rec)
		count = len(*history)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.DebugContext(ctx, "calculation recorded",
		logger.Tool("calculator"),
		logger.SessionID(sess.ID),
		slog.String("operation", in.Operation.String()),
		slog.Int("history_count", count),
	)

	return Result{Result: value, HistoryCount: count}, nil
}

// History returns a copy of the session's calculator history in call order.
// A session that never used the calculator has an empty history.
func (s *Service) History(ctx context.Context, sessionID string) ([]Record, error) {
	sess, ok := s.store.Get(ctx, sessionID)
	if !ok {
		return nil, session.ErrSessionNotFound
	}

	history := []Record{}
	err := session.View(sess, HistoryKey, func(v []Record, _ bool) {
		history = append(history, v...)
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}
