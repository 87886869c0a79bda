// Package raw reads environment variables before the logger exists.
// It must not import the logger
package raw

import (
	"os"
	"strings"
)

// Conf reads variables under a fixed prefix
type Conf struct{ prefix string }

// New returns an unprefixed Conf
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value of key or def when unset
func (c Conf) Get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + key)); v != "" {
		return v
	}
	return def
}

// GetBool treats 1, true, yes and on as true; unset returns def
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.Get(key, "")) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
