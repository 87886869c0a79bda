package middleware

import (
	"net/http"

	pnet "dollarwords/internal/platform/net"
)

// AuthPort decides who is calling
type AuthPort interface {
	Authenticate(r *http.Request) (caller string, err error)
}

// Auth rejects requests the port refuses and records the caller on the context;
// a nil port lets everything through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if p == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := p.Authenticate(r)
			if err != nil {
				status, env := pnet.ErrorEnvelope(err, pnet.RequestID(r.Context()))
				write(w, status, env)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithCaller(r.Context(), caller)))
		})
	}
}
