// Package module wires currency conversion into the API using modkit
package module

import (
	"dollarwords/internal/core/currency"
	modkit "dollarwords/internal/modkit"
	"dollarwords/internal/modkit/httpkit"
	"dollarwords/internal/platform/net/middleware"
	currencyhttp "dollarwords/internal/services/api/currency/http"
	currencysvc "dollarwords/internal/services/api/currency/service"
)

// Module implements the modkit.Module interface
type Module struct {
	b     modkit.Built
	ports Ports

	svc  *currencysvc.Svc
	auth middleware.AuthPort
}

// New constructs a currency module; zero fields in overrides fall back to FromConfig
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)
	if overrides.Policy != (currency.Policy{}) {
		o.Policy = overrides.Policy
	}
	if overrides.MaxSessions != 0 {
		o.MaxSessions = overrides.MaxSessions
	}
	if overrides.MaxInFlight != 0 {
		o.MaxInFlight = overrides.MaxInFlight
	}
	if overrides.Token != "" {
		o.Token = overrides.Token
	}

	base := []modkit.Option{modkit.WithName("currency"), modkit.WithPrefix("/currency")}
	if o.MaxInFlight > 0 {
		base = append(base, modkit.WithMiddlewares(middleware.Throttle(o.MaxInFlight)))
	}
	b := modkit.Build(append(base, opts...)...)

	conv, err := currency.New(o.Policy)
	if err != nil {
		deps.Log.Panic().Err(err).Interface("policy", o.Policy).Msg("invalid currency policy")
	}
	svc := currencysvc.New(conv, currencysvc.Config{MaxSessions: o.MaxSessions})

	m := &Module{
		b:    b,
		svc:  svc,
		auth: tokenPort(o.Token),
	}
	m.ports = Ports{Converter: svc, Sessions: svc}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		currencyhttp.Register(sub, m.svc, m.auth)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.b.Prefix }
