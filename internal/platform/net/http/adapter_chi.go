package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts any chi.Router, root mux or sub router alike
type chiRouter struct{ r chi.Router }

// AdaptChi wraps a chi mux as a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

func (c chiRouter) Get(p string, h Handler)    { c.r.Get(p, h) }
func (c chiRouter) Post(p string, h Handler)   { c.r.Post(p, h) }
func (c chiRouter) Delete(p string, h Handler) { c.r.Delete(p, h) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }
func (c chiRouter) Mux() http.Handler                         { return c.r }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(prefix string, fn func(Router)) {
	c.r.Route(prefix, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

// URLParam returns the named path parameter of the matched route
func URLParam(r *http.Request, key string) string { return chi.URLParam(r, key) }
