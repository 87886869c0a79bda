// Package module is the contract between the API and its feature modules
package module

import phttp "dollarwords/internal/platform/net/http"

// Module mounts routes and exposes ports for other modules
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
