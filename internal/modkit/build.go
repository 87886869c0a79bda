package modkit

import (
	"net/http"
	"strings"

	"dollarwords/internal/modkit/httpkit"
)

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts in order; it panics when the name or prefix end up empty
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if strings.TrimSpace(b.Name) == "" {
		panic("modkit: module name is required")
	}
	b.Prefix = cleanPrefix(b.Prefix)
	return b
}

// Mount registers the module's routes under its prefix behind its middleware
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, register)
}

// cleanPrefix yields "/x/y" from " x/y/ "; the bare root is refused
func cleanPrefix(p string) string {
	p = "/" + strings.Trim(strings.TrimSpace(p), "/")
	if p == "/" {
		panic("modkit: module prefix is required")
	}
	return p
}
