package module

import (
	"dollarwords/internal/core/currency"
	"dollarwords/internal/platform/config"
)

// Options controls the currency module
type Options struct {
	Policy      currency.Policy
	MaxSessions int
	// MaxInFlight caps concurrent currency requests, 0 leaves them unthrottled
	MaxInFlight int
	// Token guards session routes with a bearer token when non empty
	Token string
}

// FromConfig reads CORE_CURRENCY_* for the converter and CORE_API_TOKEN for auth
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_CURRENCY_")
	return Options{
		Policy:      PolicyFromConfig(cfg),
		MaxSessions: c.MayInt("MAX_SESSIONS", 1024),
		MaxInFlight: c.MayInt("MAX_INFLIGHT", 0),
		Token:       cfg.Prefix("CORE_API_").MayString("TOKEN", ""),
	}
}

// PolicyFromConfig reads CORE_CURRENCY_MIN_BOUNDARY and CORE_CURRENCY_MAX_BOUNDARY
func PolicyFromConfig(cfg config.Conf) currency.Policy {
	c := cfg.Prefix("CORE_CURRENCY_")
	return currency.Policy{
		Min: c.MayFloat64("MIN_BOUNDARY", currency.DefaultMin),
		Max: c.MayFloat64("MAX_BOUNDARY", currency.DefaultMax),
	}
}
