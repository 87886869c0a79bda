package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "dollarwords/internal/platform/net/http"
	"dollarwords/internal/platform/net/middleware"
)

// CORSOptions configures the cross origin layer of CommonStack
type CORSOptions = middleware.CORSOptions

const (
	slowRequest    = 500 * time.Millisecond
	requestTimeout = 30 * time.Second
)

// CommonStack is the middleware every API route runs behind
func CommonStack(cors CORSOptions) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.AccessLog(slowRequest),
		middleware.NoCache(),
		middleware.CORS(cors),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(requestTimeout),
	}
}

// Auth wires the auth middleware to the envelope writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
