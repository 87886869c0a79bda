package module

import (
	"crypto/subtle"

	"dollarwords/internal/modkit/httpkit"
	perr "dollarwords/internal/platform/errors"
	"dollarwords/internal/platform/net/middleware"
)

// tokenPort returns nil when token is empty so the auth middleware passes through
func tokenPort(token string) middleware.AuthPort {
	if token == "" {
		return nil
	}
	want := []byte(token)
	return httpkit.NewPortFunc(func(got string) (string, error) {
		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			return "", perr.Unauthorizedf("invalid token")
		}
		return "api", nil
	})
}
