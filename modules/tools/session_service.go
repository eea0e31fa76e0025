package tools

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/statetools/handler"
	"github.com/dmitrymomot/statetools/pkg/logger"
	"github.com/dmitrymomot/statetools/pkg/session"
	"github.com/dmitrymomot/statetools/pkg/tool"
)

// CreateSessionToolName is the operation id of session creation.
const CreateSessionToolName = "create_session"

// SessionService issues sessions over HTTP.
type SessionService struct {
	cfg          Config
	store        session.Store
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewSessionService creates the session creation endpoint.
func NewSessionService(
	cfg Config,
	store session.Store,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
) *SessionService {
	return &SessionService{
		cfg:          cfg,
		store:        store,
		logger:       log,
		errorHandler: errorHandler,
	}
}

// Handle serves POST / relative to the mount point.
func (s *SessionService) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/", handler.Wrap(s.create,
		handler.WithErrorHandler[handler.Context, CreateSessionRequest](s.errorHandler),
	))
	return r
}

// CreateSessionRequest carries nothing; the optional token comes from the
// Authorization header.
type CreateSessionRequest struct{}

// CreateSessionResponse is returned on session creation.
type CreateSessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *SessionService) create(ctx handler.Context, _ CreateSessionRequest) handler.Response {
	token, hasToken := session.TokenFromRequest(ctx.Request())
	if s.cfg.RequireToken && !hasToken {
		return handler.Error(errTokenRequired)
	}

	sess, err := s.store.Create(ctx, token)
	if err != nil {
		return handler.Error(toHTTPError(err))
	}

	s.logger.InfoContext(ctx, "session created",
		logger.Tool(CreateSessionToolName),
		logger.SessionID(sess.ID),
		slog.Bool("has_token", hasToken),
	)

	return handler.JSON(CreateSessionResponse{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
	}, handler.WithJSONStatus(http.StatusCreated))
}

// CreateSessionDefinition describes session creation for tool manifests.
func CreateSessionDefinition() tool.Definition {
	return tool.Definition{
		Name: CreateSessionToolName,
		Description: "Creates a new session and returns its session_id. " +
			"Call it once before using other tools and pass the id on every call.",
		Parameters: tool.ObjectSchema(),
	}
}
