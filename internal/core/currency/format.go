package currency

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatInput renders a logged input the way a JavaScript number prints:
// plain decimals in [1e-6, 1e21), exponent form outside, "0" for negative zero
func FormatInput(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case string:
		return n
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return formatFloat(f)
		}
		return n.String()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(n)
	}
	if f, ok := Float(v); ok {
		return formatFloat(f)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	// Go pads the exponent to two digits (1e-07), JS does not (1e-7)
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
