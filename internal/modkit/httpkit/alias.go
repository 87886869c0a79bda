// Package httpkit is what modules use to declare routes; they never import
// the platform http package or chi directly
package httpkit

import (
	"net/http"

	phttp "dollarwords/internal/platform/net/http"
	"dollarwords/internal/platform/net/http/bind"
)

type (
	// Router is the platform routing seam
	Router = phttp.Router
	// Handler is the platform handler shape
	Handler = phttp.Handler
	// Response lets a handler pick its own status
	Response = phttp.Response
)

// Created marks a handler result as 201
func Created(data any) Response { return phttp.Created(data) }

// NoContent is a 204 handler result
func NoContent() Response { return phttp.NoContent() }

// Param returns a path parameter of the matched route
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// JSON binds the body into T, then calls fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Call(func(r *http.Request) (any, error) {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}

// Call adapts a body-less handler; a plain result is a 200, a Response is sent as is
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
