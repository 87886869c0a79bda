package module

import "fmt"

// PortsOf returns m's ports as T
func PortsOf[T any](m Module) (T, bool) {
	p, ok := m.Ports().(T)
	return p, ok
}

// MustPortsOf is PortsOf for wiring code, where a mismatch is a programming error
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: ports are %T, not %T", m.Name(), m.Ports(), p))
	}
	return p
}
