// Package querylog keeps an append-only history of conversions and renders it as text
//
// A Log has no internal locking, it belongs to a single caller. Callers that
// share one must serialize Record and Render themselves
package querylog

import (
	"strconv"
	"strings"

	"dollarwords/internal/core/currency"
)

// Header is the first line of a rendered, non-empty history
const Header = "CurrencyContainer queries"

// Converter is the slice of the currency converter the log needs
type Converter interface {
	ConvertAny(v any) currency.Result
}

// ConversionRecord is one logged conversion
type ConversionRecord struct {
	Input  any
	Output currency.Result
}

// String formats the record as {value = <input>, currency = <output>}
func (r ConversionRecord) String() string {
	return "{value = " + currency.FormatInput(r.Input) + ", currency = " + r.Output.String() + "}"
}

// Log is an ordered history of conversions
type Log struct {
	conv    Converter
	records []ConversionRecord
}

// New returns an empty log backed by conv
func New(conv Converter) *Log {
	if conv == nil {
		panic("querylog.New requires a non nil Converter")
	}
	return &Log{conv: conv}
}

// Record converts v, appends the pair and returns it; invalid input is logged too
func (l *Log) Record(v any) ConversionRecord {
	rec := ConversionRecord{Input: v, Output: l.conv.ConvertAny(v)}
	l.records = append(l.records, rec)
	return rec
}

// Len returns the number of records
func (l *Log) Len() int { return len(l.records) }

// Records returns a copy of the history in insertion order
func (l *Log) Records() []ConversionRecord {
	out := make([]ConversionRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Render dumps the whole history, one indented line per record; empty log renders as ""
func (l *Log) Render() string {
	if len(l.records) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for i, r := range l.records {
		b.WriteString("\t#")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(". ")
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}
