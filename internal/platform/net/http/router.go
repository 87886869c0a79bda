package http

import "net/http"

// Handler is the handler shape routes are registered with
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules mount against
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Delete(path string, h Handler)

	Handle(pattern string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(prefix string, fn func(Router))

	// Mux is the underlying handler, for tests and servers
	Mux() http.Handler
}
