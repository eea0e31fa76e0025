package tools

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/statetools/handler"
	"github.com/dmitrymomot/statetools/pkg/calculator"
	"github.com/dmitrymomot/statetools/pkg/clientip"
	"github.com/dmitrymomot/statetools/pkg/httpserver"
	"github.com/dmitrymomot/statetools/pkg/logger"
	"github.com/dmitrymomot/statetools/pkg/ratelimiter"
	"github.com/dmitrymomot/statetools/pkg/requestid"
	"github.com/dmitrymomot/statetools/pkg/session"
)

// Mountable is implemented by services that serve a sub-tree of routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the tools router. Store is required; everything
// else has a default.
type RouterOptions struct {
	Config       Config
	Store        session.Store
	Calculator   *calculator.Service
	Logger       *slog.Logger
	ErrorHandler handler.ErrorHandler[handler.Context]

	// ReadinessChecks run in addition to the store ping on /health/ready.
	ReadinessChecks []httpserver.Check

	// SessionLimiter overrides the limiter built from Config.SessionRateLimit.
	SessionLimiter *ratelimiter.Bucket
}

// Router builds the complete HTTP surface:
//
//	POST /session                    create a session
//	POST /tools/calculator           run a calculation
//	GET  /tools/calculator/history   read the calculation history
//	GET  /tools                      tool manifest
//	GET  /                           redirect to /tools
//	GET  /health/live, /health/ready probes
//
// Middleware order: request id, client ip, request logging, panic recovery, CORS.
func Router(opts RouterOptions) chi.Router {
	if opts.Store == nil {
		panic("tools: session store is required")
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	if opts.Calculator == nil {
		opts.Calculator = calculator.NewService(opts.Store, calculator.WithLogger(log))
	}
	errorHandler := opts.ErrorHandler
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log)
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(clientIPResolver(opts.Config)),
		requestLogger(log),
		middleware.Recoverer,
		cors.Handler(corsOptions(opts.Config)),
	)

	r.NotFound(handler.Wrap(routeError(handler.ErrNotFound),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))
	r.MethodNotAllowed(handler.Wrap(routeError(handler.ErrMethodNotAllowed),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	r.Get("/", handler.Wrap(redirectTo(ManifestPath)))

	probes := append([]httpserver.Check{opts.Store.Ping}, opts.ReadinessChecks...)
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, probes...))

	r.Get(ManifestPath, handler.Wrap(manifestHandler(NewRegistry()),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler)))

	var (
		sessions Mountable = NewSessionService(opts.Config, opts.Store, log, errorHandler)
		calc     Mountable = NewCalculatorService(opts.Calculator, log, errorHandler)
	)
	sessionRoutes := chi.Router(r)
	if limiter := sessionLimiter(opts); limiter != nil {
		denied := handler.Wrap(routeError(handler.ErrTooManyRequests.WithMessage("Too many sessions created, retry later")),
			handler.WithErrorHandler[handler.Context, struct{}](errorHandler))
		sessionRoutes = r.With(ratelimiter.Middleware(limiter, clientip.FromRequest, denied))
	}
	sessionRoutes.Mount(SessionPath, sessions.Handle())
	r.Mount(CalculatorPath, calc.Handle())

	return r
}

func sessionLimiter(opts RouterOptions) *ratelimiter.Bucket {
	if opts.SessionLimiter != nil {
		return opts.SessionLimiter
	}
	if opts.Config.SessionRateLimit <= 0 {
		return nil
	}
	limiter, err := ratelimiter.NewBucket(ratelimiter.PerMinute(opts.Config.SessionRateLimit))
	if err != nil {
		panic("tools: " + err.Error())
	}
	return limiter
}

func clientIPResolver(cfg Config) *clientip.Resolver {
	if cfg.TrustProxyHeaders {
		return clientip.New(clientip.DefaultProxyHeaders...)
	}
	return clientip.New()
}

func corsOptions(cfg Config) cors.Options {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestid.Header},
		AllowCredentials: true,
		MaxAge:           cfg.CORSMaxAge,
	}
}

func routeError(err handler.HTTPError) handler.HandlerFunc[handler.Context, struct{}] {
	return func(handler.Context, struct{}) handler.Response {
		return handler.Error(err)
	}
}

func redirectTo(path string) handler.HandlerFunc[handler.Context, struct{}] {
	return func(handler.Context, struct{}) handler.Response {
		return handler.RedirectWithCode(path, http.StatusTemporaryRedirect)
	}
}
