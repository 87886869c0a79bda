// Package amount parses user typed text into a numeric amount
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Remove format chars (zero-widths, BOM)
// 4 Width fold fullwidth digits and signs to ASCII
// 5 Trim, map the unicode minus sign, match the decimal grammar
package amount

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"

	perr "dollarwords/internal/platform/errors"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// grammar accepts what an HTML number input accepts: sign, digits, fraction, exponent
var grammar = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Normalize folds s to the plain ASCII form the grammar expects
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	ns = strings.ReplaceAll(ns, "\u2212", "-")
	return strings.TrimSpace(ns)
}

// Parse returns the amount typed in s. Hex, Inf, NaN, digit separators and empty
// input are rejected with an invalid argument error
func Parse(s string) (float64, error) {
	ns := Normalize(s)
	if ns == "" {
		return 0, perr.WithField(perr.InvalidArgf("amount: empty input"), perr.FieldValue)
	}
	if !grammar.MatchString(ns) {
		return 0, perr.WithField(perr.InvalidArgf("amount: %q is not a number", s), perr.FieldValue)
	}
	f, err := strconv.ParseFloat(ns, 64)
	if err != nil {
		// only range errors reach here, the grammar already matched
		return 0, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "amount: %q is out of range", s), perr.FieldValue)
	}
	return f, nil
}
