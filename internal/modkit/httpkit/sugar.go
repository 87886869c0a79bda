package httpkit

import "net/http"

// Get registers a body-less GET handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a body-less POST handler
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}

// PostJSON registers a POST handler whose body is bound into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// Delete registers a body-less DELETE handler
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, Call(h))
}
