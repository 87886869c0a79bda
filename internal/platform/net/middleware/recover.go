package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "dollarwords/internal/platform/errors"
	"dollarwords/internal/platform/logger"
	pnet "dollarwords/internal/platform/net"
)

// RecoverJSON turns a handler panic into a 500 envelope and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			reqID := pnet.RequestID(r.Context())
			status, env := pnet.ErrorEnvelope(perr.Newf(perr.ErrorCodePanic, "panic recovered"), reqID)
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(env)
		}()
		next.ServeHTTP(w, r)
	})
}
