// Package http is the chi backed transport: router seam, server, envelope responses and pprof
package http

import (
	"encoding/json"
	stdhttp "net/http"

	"dollarwords/internal/platform/logger"
	pnet "dollarwords/internal/platform/net"
)

// Envelope is the body of every JSON response
type Envelope = pnet.Envelope

// JSON writes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Named("http").Warn().Err(err).Msg("response write failed")
	}
}

// Response is what return style handlers produce
type Response struct {
	Status int
	Body   any
	Err    error
}

// OK is a 200 with data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created is a 201 with data
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent is an empty 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error lets err pick the status
func Error(err error) Response { return Response{Err: err} }

// Handle adapts a return style handler
func Handle(fn func(*stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		fn(r).Write(w, r)
	}
}

// Write sends resp wrapped in an Envelope, 204 goes out without a body
func (resp Response) Write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	reqID := pnet.RequestID(r.Context())
	if resp.Err != nil {
		status, env := pnet.ErrorEnvelope(resp.Err, reqID)
		if status >= stdhttp.StatusInternalServerError {
			logger.C(r.Context()).Error().Err(resp.Err).Msg("request failed")
		}
		JSON(w, status, env)
		return
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	JSON(w, status, pnet.DataEnvelope(status, resp.Body, reqID))
}
