package handler

import (
	"context"
	"net/http"
)

// Context is the request-scoped value every HandlerFunc receives. It is a
// context.Context in its own right, so it can be passed straight to the
// session store and logger.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext binds w and r into a Context carrying r's context.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c httpContext) Request() *http.Request              { return c.r }
func (c httpContext) ResponseWriter() http.ResponseWriter { return c.w }
