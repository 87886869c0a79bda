package module

import (
	"testing"

	phttp "dollarwords/internal/platform/net/http"
	kit "dollarwords/internal/platform/testkit"
)

type converterPorts struct{ Max float64 }

type fake struct{ ports any }

func (fake) MountRoutes(phttp.Router) {}
func (f fake) Ports() any             { return f.ports }
func (fake) Name() string             { return "currency" }

func TestPortsOf(t *testing.T) {
	m := fake{ports: converterPorts{Max: 1000}}

	p, ok := PortsOf[converterPorts](m)
	if !ok || p.Max != 1000 {
		t.Fatalf("PortsOf = %+v %v", p, ok)
	}
	if _, ok := PortsOf[string](m); ok {
		t.Fatalf("mismatched type must not match")
	}
	if got := MustPortsOf[converterPorts](m); got.Max != 1000 {
		t.Fatalf("MustPortsOf = %+v", got)
	}
}

func TestMustPortsOf_PanicsOnMismatch(t *testing.T) {
	kit.MustPanic(t, func() { MustPortsOf[converterPorts](fake{}) })
	kit.MustPanic(t, func() { MustPortsOf[int](fake{ports: converterPorts{}}) })
}
