// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "dollarwords/internal/modkit"
	"dollarwords/internal/modkit/httpkit"

	currencydom "dollarwords/internal/services/api/currency/domain"
	metahttp "dollarwords/internal/services/api/meta/http"
)

// ServiceName is reported by health and version endpoints
const ServiceName = "dollarwords-api"

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	startedAt time.Time
	ports     Ports
}

// Ports are the cross module ports meta reads from, owned by the API wiring
type Ports struct {
	Converter currencydom.ConvertPort
}

// New constructs a meta module; pass the converter with modkit.WithPorts(Ports{...})
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{b: b, startedAt: time.Now()}
	if p, ok := b.Ports.(Ports); ok {
		m.ports = p
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) {
		metahttp.Register(sub, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Converter:   m.ports.Converter,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Ports returns the ports meta was built with
func (m *Module) Ports() any { return m.ports }
