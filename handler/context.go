package handler

import (
	"context"
	"net/http"
)

// Context is the request context passed to handlers. It is the request's
// own context.Context plus access to the request and the response writer.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext creates a Context bound to r's context.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
