// Package config reads settings from prefixed environment variables such as
// CORE_API_PORT and CORE_CURRENCY_MAX_BOUNDARY. Bad values log a warning and fall back
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"dollarwords/internal/platform/logger"
)

// Conf is a view over the environment under a prefix
type Conf struct{ prefix string }

// New returns the unprefixed root view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix, New().Prefix("CORE_CURRENCY_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// lookup returns the full key and trimmed value, ok is false when unset or blank
func (c Conf) lookup(key string) (full, val string, ok bool) {
	full = c.prefix + key
	val = strings.TrimSpace(os.Getenv(full))
	return full, val, val != ""
}

// parseOr parses the value of key or returns def, warning when it does not parse
func parseOr[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	full, s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", full).Str("value", s).
			Interface("default", def).Msg("invalid env value; using default")
		return def
	}
	return v
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string {
	if _, v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value of key as an int or def
func (c Conf) MayInt(key string, def int) int {
	return parseOr(c, key, def, strconv.Atoi)
}

// MayBool returns the value of key as a bool or def
func (c Conf) MayBool(key string, def bool) bool {
	return parseOr(c, key, def, strconv.ParseBool)
}

// MayFloat64 returns the value of key as a finite float or def;
// Inf and NaN are refused so they never reach a bound policy
func (c Conf) MayFloat64(key string, def float64) float64 {
	return parseOr(c, key, def, func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, fmt.Errorf("%q is not finite", s)
		}
		return f, nil
	})
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	_, s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
