// Package currency turns bounded monetary amounts into English words,
// e.g. 1234.38 -> "one thousand two hundred thirty four and 38/100 dollars"
package currency

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	perr "dollarwords/internal/platform/errors"

	"github.com/shopspring/decimal"
)

const (
	// DefaultMax is the inclusive upper bound used when no policy is given (10^13)
	DefaultMax = 10_000_000_000_000
	// DefaultMin is the inclusive lower bound used when no policy is given (-10^13)
	DefaultMin = -DefaultMax

	// MaxSafe is the largest magnitude a bound may have; whole dollars above it
	// are not exact in a float64
	MaxSafe = 1 << 53
)

// Policy is the closed interval of convertible amounts
type Policy struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultPolicy returns [-10^13, 10^13]
func DefaultPolicy() Policy { return Policy{Min: DefaultMin, Max: DefaultMax} }

// Validate checks the policy is finite, ordered and within MaxSafe
func (p Policy) Validate() error {
	bounds := [...]struct {
		field string
		v     float64
	}{{perr.FieldMin, p.Min}, {perr.FieldMax, p.Max}}
	for _, b := range bounds {
		if math.IsNaN(b.v) || math.IsInf(b.v, 0) {
			return perr.WithField(perr.InvalidArgf("currency: bound %v is not finite", b.v), b.field)
		}
		if math.Abs(b.v) > MaxSafe {
			return perr.WithField(perr.InvalidArgf("currency: bound %v exceeds %d", b.v, int64(MaxSafe)), b.field)
		}
	}
	if p.Min > p.Max {
		return perr.WithField(perr.InvalidArgf("currency: min %v is greater than max %v", p.Min, p.Max), perr.FieldMin)
	}
	return nil
}

// Contains reports whether v is inside the closed interval
func (p Policy) Contains(v float64) bool { return v >= p.Min && v <= p.Max }

// Converter converts amounts within its policy. It is immutable and safe for concurrent use
type Converter struct {
	policy Policy
}

// New builds a Converter for the given policy
func New(p Policy) (*Converter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Converter{policy: p}, nil
}

// Default returns a Converter using DefaultPolicy
func Default() *Converter { return &Converter{policy: DefaultPolicy()} }

// Policy returns the active bound policy
func (c *Converter) Policy() Policy { return c.policy }

// Convert words a float amount; NaN, infinities and out of bound values are Invalid
func (c *Converter) Convert(v float64) Result {
	if math.IsNaN(v) || math.IsInf(v, 0) || !c.policy.Contains(v) {
		return Invalid
	}

	var b strings.Builder
	if v < 0 {
		b.WriteString("negative ")
		v = -v
	}

	// round on the shortest decimal form so 0.159 -> 0.16 and 0.154 -> 0.15
	amt := decimal.NewFromFloat(v).Round(2)
	whole := amt.Floor()
	dollars := whole.IntPart()
	cents := amt.Sub(whole).Shift(2).IntPart()

	b.WriteString(dollarWords(dollars))
	fmt.Fprintf(&b, "and %02d/100 dollars", cents)
	return Words(b.String())
}

// ConvertAny accepts any Go value; only numeric kinds can convert
func (c *Converter) ConvertAny(v any) Result {
	f, ok := Float(v)
	if !ok {
		return Invalid
	}
	return c.Convert(f)
}

// Float extracts a float64 from numeric Go kinds and json.Number
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// dollarWords words a non-negative whole dollar amount, each group carries its own trailing space
func dollarWords(n int64) string {
	if n == 0 {
		return "zero "
	}
	return group(n, 0)
}

// group decomposes n against magnitudes[i:], recursing on the quotient so
// values past the largest breakpoint still read ("ten quadrillion")
func group(n int64, i int) string {
	if i >= len(magnitudes) {
		return hundreds(n)
	}
	m := magnitudes[i]
	if n < m.Value {
		return group(n, i+1)
	}
	return group(n/m.Value, i) + m.Word + " " + group(n%m.Value, i+1)
}

func hundreds(n int64) string {
	if n >= 100 {
		return tensWords(n/100) + "hundred " + tensWords(n%100)
	}
	return tensWords(n)
}

func tensWords(n int64) string {
	switch {
	case n < 10:
		if n == 0 {
			return ""
		}
		return ones[n] + " "
	case n < 20:
		return teens[n-10] + " "
	default:
		s := tens[n/10] + " " + ones[n%10]
		if n%10 > 0 {
			s += " "
		}
		return s
	}
}
