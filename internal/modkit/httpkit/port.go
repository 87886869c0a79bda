package httpkit

import (
	"net/http"
	"strings"

	perr "dollarwords/internal/platform/errors"
)

// TokenFunc checks a bearer token and names the caller
type TokenFunc func(token string) (caller string, err error)

// Port reads the Authorization header and hands the token to a TokenFunc
type Port struct {
	check TokenFunc
}

// NewPortFunc builds a Port around fn
func NewPortFunc(fn TokenFunc) *Port { return &Port{check: fn} }

// Authenticate implements middleware.AuthPort
func (p *Port) Authenticate(r *http.Request) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	if p.check == nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	caller, err := p.check(token)
	if err != nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	return caller, nil
}
