package clientip

import (
	"context"
	"log/slog"
	"net/http"
)

type ctxKey struct{}

// WithIP stores the client IP in the context.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ip)
}

// FromContext returns the client IP stored by Middleware.
func FromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ctxKey{}).(string); ok {
		return ip
	}
	return ""
}

// FromRequest returns the client IP stored in the request context.
// It has the shape of a rate limiter key function.
func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}

// LoggerExtractor adds the client IP to log records produced with a
// request-scoped context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
