package config

import (
	"reflect"
	"testing"
)

func TestPrefix_Nests(t *testing.T) {
	t.Setenv("CORE_CURRENCY_TOKEN", "x")
	c := New().Prefix("CORE_").Prefix("CURRENCY_")
	if got := c.MayString("TOKEN", ""); got != "x" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("CORE_API_")
	t.Setenv("CORE_API_PORT", "  :8080 ")
	if got := c.MayString("PORT", ":4000"); got != ":8080" {
		t.Fatalf("MayString = %q", got)
	}
	t.Setenv("CORE_API_PORT", "   ")
	if got := c.MayString("PORT", ":4000"); got != ":4000" {
		t.Fatalf("blank should default, got %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("CORE_CURRENCY_")
	tests := []struct {
		val  string
		want int
	}{
		{"", 1024},
		{"16", 16},
		{"many", 1024},
	}
	for _, tt := range tests {
		t.Setenv("CORE_CURRENCY_MAX_SESSIONS", tt.val)
		if got := c.MayInt("MAX_SESSIONS", 1024); got != tt.want {
			t.Fatalf("MayInt(%q) = %d want %d", tt.val, got, tt.want)
		}
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("CORE_API_")
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"false", true, false},
		{"1", false, true},
		{"sometimes", false, false},
	}
	for _, tt := range tests {
		t.Setenv("CORE_API_SWAGGER", tt.val)
		if got := c.MayBool("SWAGGER", tt.def); got != tt.want {
			t.Fatalf("MayBool(%q) = %v want %v", tt.val, got, tt.want)
		}
	}
}

func TestMayFloat64_RefusesNonFinite(t *testing.T) {
	c := New().Prefix("CORE_CURRENCY_")
	tests := []struct {
		val  string
		want float64
	}{
		{"", 1e13},
		{"-5.5", -5.5},
		{"1e15", 1e15},
		{"Inf", 1e13},
		{"-infinity", 1e13},
		{"NaN", 1e13},
		{"lots", 1e13},
	}
	for _, tt := range tests {
		t.Setenv("CORE_CURRENCY_MAX_BOUNDARY", tt.val)
		if got := c.MayFloat64("MAX_BOUNDARY", 1e13); got != tt.want {
			t.Fatalf("MayFloat64(%q) = %v want %v", tt.val, got, tt.want)
		}
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CORE_API_")
	def := []string{"*"}
	tests := []struct {
		val  string
		want []string
	}{
		{"", def},
		{" , ,", def},
		{"https://a.test, https://b.test ,", []string{"https://a.test", "https://b.test"}},
	}
	for _, tt := range tests {
		t.Setenv("CORE_API_CORS_ORIGINS", tt.val)
		if got := c.MayCSV("CORS_ORIGINS", def); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("MayCSV(%q) = %v want %v", tt.val, got, tt.want)
		}
	}
}
