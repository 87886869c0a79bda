// Package testkit holds the assertions and seams shared by package tests
package testkit

import (
	"strings"
	"testing"
)

// Swap replaces *target for the rest of the test
func Swap[T any](t testing.TB, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// MustPanic fails unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}

// MustContain fails unless out contains want, printing out in full
func MustContain(t testing.TB, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q in output:\n%s", want, out)
	}
}
