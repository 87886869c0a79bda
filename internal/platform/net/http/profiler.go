package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves net/http/pprof under prefix, e.g. /debug/pprof/heap
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}
