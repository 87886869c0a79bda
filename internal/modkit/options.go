package modkit

import "net/http"

// Option adjusts how a module is built
type Option func(*Built)

// WithName names the module for logs and lookups
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix, e.g. "/currency"
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends middleware that wraps only this module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands the module ports owned by another module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }
