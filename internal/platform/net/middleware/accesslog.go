package middleware

import (
	"net/http"
	"time"

	"dollarwords/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog writes one zerolog line per request; requests slower than slow log at warn
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := logger.C(r.Context())
			evt := log.Info()
			if slow > 0 && elapsed >= slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}
