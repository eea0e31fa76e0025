package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/statetools/pkg/logger"
)

// Check reports whether a dependency is ready to serve traffic.
type Check func(ctx context.Context) error

// HealthCheckHandler returns a handler usable for both probes.
//
//   - Liveness: with no checks the handler returns 200 with body "ALIVE".
//   - Readiness: every check runs with the request context; if all succeed the
//     handler returns 200 "READY", otherwise 503 "NOT_READY".
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component("healthcheck"),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
