// Package http provides http transport for currency conversion and query sessions
package http

import (
	stdhttp "net/http"

	"dollarwords/internal/modkit/httpkit"
	"dollarwords/internal/platform/net/middleware"
	"dollarwords/internal/services/api/currency/domain"
	svc "dollarwords/internal/services/api/currency/service"
)

// Register mounts currency endpoints on the given router
// session routes sit behind auth when a port is given, convert stays public
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ValueInput](r, "/convert", h.convert)

	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		httpkit.Post(pr, "/sessions", h.open)
		httpkit.Get(pr, "/sessions/{id}", h.session)
		httpkit.PostJSON[domain.ValueInput](pr, "/sessions/{id}/queries", h.record)
		httpkit.Get(pr, "/sessions/{id}/queries", h.queries)
		httpkit.Get(pr, "/sessions/{id}/history", h.history)
		httpkit.Delete(pr, "/sessions/{id}", h.close)
	})
}

type handlers struct{ svc svc.Service }

// swagger:route POST /currency/convert Currency currencyConvert
// @Summary Convert one amount to words
// @Tags Currency
// @Accept json
// @Produce json
// @Param payload body domain.ValueInput true "Amount"
// @Success 200 {object} domain.Conversion "ok"
// @Router /currency/convert [post]
func (h *handlers) convert(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.Convert(r.Context(), in)
}

// swagger:route POST /currency/sessions Currency currencyOpenSession
// @Summary Open an empty query session
// @Tags Currency
// @Produce json
// @Success 201 {object} domain.Session "created"
// @Router /currency/sessions [post]
func (h *handlers) open(r *stdhttp.Request) (any, error) {
	sess, err := h.svc.Open(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.Created(sess), nil
}

// swagger:route GET /currency/sessions/{id} Currency currencySession
// @Summary Session info and query count
// @Tags Currency
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "ok"
// @Router /currency/sessions/{id} [get]
func (h *handlers) session(r *stdhttp.Request) (any, error) {
	return h.svc.Session(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route POST /currency/sessions/{id}/queries Currency currencyRecord
// @Summary Convert an amount and log it on the session
// @Tags Currency
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.ValueInput true "Amount"
// @Success 200 {object} domain.QueryRecord "ok"
// @Router /currency/sessions/{id}/queries [post]
func (h *handlers) record(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.Record(r.Context(), httpkit.Param(r, "id"), in)
}

// swagger:route GET /currency/sessions/{id}/queries Currency currencyQueries
// @Summary Logged queries in call order
// @Tags Currency
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {array} domain.QueryRecord "ok"
// @Router /currency/sessions/{id}/queries [get]
func (h *handlers) queries(r *stdhttp.Request) (any, error) {
	return h.svc.Queries(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route GET /currency/sessions/{id}/history Currency currencyHistory
// @Summary Text dump of the session history
// @Tags Currency
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.History "ok"
// @Router /currency/sessions/{id}/history [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	return h.svc.History(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route DELETE /currency/sessions/{id} Currency currencyCloseSession
// @Summary Drop a session and its history
// @Tags Currency
// @Param id path string true "Session id"
// @Success 204 "no content"
// @Router /currency/sessions/{id} [delete]
func (h *handlers) close(r *stdhttp.Request) (any, error) {
	if err := h.svc.Close(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
