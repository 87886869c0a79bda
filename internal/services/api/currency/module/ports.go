package module

import dom "dollarwords/internal/services/api/currency/domain"

// Ports holds the ports exposed by the currency module
type Ports struct {
	Converter dom.ConvertPort
	Sessions  dom.SessionPort
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
