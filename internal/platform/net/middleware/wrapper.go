// Package middleware adapts chi and go-chi/cors middleware so modules never import chi
package middleware

import (
	"net/http"
	"time"

	"dollarwords/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID assigns or propagates X-Request-ID and tags the request logger with it
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		tag := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), chimw.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
		return chimw.RequestID(tag)
	}
}

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// NoCache marks every response as uncacheable
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress gzips responses at the given flate level
func Compress(level int) func(http.Handler) http.Handler { return chimw.Compress(level) }

// StripSlashes routes /foo/ as /foo
func StripSlashes() func(http.Handler) http.Handler { return chimw.StripSlashes }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// Throttle caps concurrent requests, extra ones get 429 at once
func Throttle(limit int) func(http.Handler) http.Handler { return chimw.Throttle(limit) }

// CORSOptions is the part of go-chi/cors the API exposes
type CORSOptions struct {
	// AllowedOrigins empty allows every origin
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows the methods and headers the currency routes use
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}
