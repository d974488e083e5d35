package handler

import (
	"context"
	"net/http"
	"time"
)

// Context defines the contract for request contexts in the framework.
// Use New for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// baseContext is the default context implementation.
// It delegates all context.Context methods to the request's context.
type baseContext struct {
	w      http.ResponseWriter
	r      *http.Request
	values map[any]any
}

// New creates the default Context for a request.
func New(w http.ResponseWriter, r *http.Request) Context {
	return &baseContext{w: w, r: r}
}

// Deadline delegates to r.Context().
func (c *baseContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to r.Context().
func (c *baseContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to r.Context().
func (c *baseContext) Err() error {
	return c.r.Context().Err()
}

// Value returns a value stored with SetValue, falling back to the request context.
func (c *baseContext) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *baseContext) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *baseContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the path value registered by http.ServeMux patterns.
func (c *baseContext) Param(key string) string {
	return c.r.PathValue(key)
}

// SetValue stores a request-scoped value.
func (c *baseContext) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
