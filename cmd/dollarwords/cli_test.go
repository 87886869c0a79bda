package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"dollarwords/internal/adapters/sink"
	"dollarwords/internal/core/currency"
	kit "dollarwords/internal/platform/testkit"
)

func run(t *testing.T, out sink.Sink, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(out)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvert_Lines(t *testing.T) {
	got, err := run(t, nil, "", "convert", "1234.38", "abc", "--", "-1.01")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := "Currency Query: {value = 1234.38, currency = one thousand two hundred thirty four and 38/100 dollars}\n" +
		"value is not valid!\n" +
		"Currency Query: {value = -1.01, currency = negative one and 01/100 dollars}\n"
	if got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}
}

func TestConvert_History(t *testing.T) {
	var b sink.Buffer
	if _, err := run(t, &b, "", "convert", "--history", "1", "x"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	want := "CurrencyContainer queries\n" +
		"\t#0. {value = 1, currency = one and 00/100 dollars}\n" +
		"\t#1. {value = x, currency = " + currency.InvalidText + "}"
	if lines[2] != want {
		t.Fatalf("history\n got %q\nwant %q", lines[2], want)
	}
}

func TestConvert_BoundFlags(t *testing.T) {
	got, err := run(t, nil, "", "--max", "100", "convert", "101", "100")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	kit.MustContain(t, got, "value is not valid!\n")
	kit.MustContain(t, got, "one hundred and 00/100 dollars")
}

func TestConvert_BadBounds(t *testing.T) {
	if _, err := run(t, nil, "", "--min", "10", "--max", "1", "convert", "5"); err == nil {
		t.Fatalf("expected error for min > max")
	}
}

func TestConvert_NeedsArgs(t *testing.T) {
	if _, err := run(t, nil, "", "convert"); err == nil {
		t.Fatalf("expected error without values")
	}
}

func TestUnknownSink(t *testing.T) {
	if _, err := run(t, nil, "", "--sink", "file", "convert", "1"); err == nil {
		t.Fatalf("expected error for unknown sink")
	}
}

func TestRepl(t *testing.T) {
	var b sink.Buffer
	stdin := "12\n\nnope\nhistory\nclear\n0.5\nquit\n7\n"
	if _, err := run(t, &b, stdin, "repl"); err != nil {
		t.Fatalf("repl: %v", err)
	}
	lines := b.Lines()
	if len(lines) != 1 {
		t.Fatalf("clear should drop earlier lines, got %q", lines)
	}
	if lines[0] != "Currency Query: {value = 0.5, currency = zero and 50/100 dollars}" {
		t.Fatalf("unexpected line %q", lines[0])
	}
}

func TestRepl_HistoryKeepsOrder(t *testing.T) {
	var b sink.Buffer
	if _, err := run(t, &b, "3\n1e2\nhistory\n", "repl"); err != nil {
		t.Fatalf("repl: %v", err)
	}
	lines := b.Lines()
	last := lines[len(lines)-1]
	kit.MustContain(t, last, "\t#0. {value = 3, currency = three and 00/100 dollars}")
	kit.MustContain(t, last, "\t#1. {value = 100, currency = one hundred and 00/100 dollars}")
}

func TestRepl_LongLineIsNotValidAndContinues(t *testing.T) {
	var b sink.Buffer
	stdin := "1\n" + strings.Repeat("9", 70_000) + "\n2\nhistory\n"
	if _, err := run(t, &b, stdin, "repl"); err != nil {
		t.Fatalf("repl: %v", err)
	}
	lines := b.Lines()
	if len(lines) != 4 {
		t.Fatalf("lines = %d %q", len(lines), lines)
	}
	if lines[1] != notValid {
		t.Fatalf("long line reported as %q", lines[1])
	}
	kit.MustContain(t, lines[2], "two and 00/100 dollars")
	kit.MustContain(t, lines[3], "\t#1. {value = 2, currency = two and 00/100 dollars}")
}

func TestNextLine(t *testing.T) {
	br := bufio.NewReaderSize(strings.NewReader("12\r\n"+strings.Repeat("x", maxLine+1)+"\nlast"), 16)

	tests := []struct {
		line    string
		tooLong bool
	}{
		{"12", false},
		{"", true},
		{"last", false},
	}
	for i, tt := range tests {
		line, tooLong, err := nextLine(br)
		if err != nil || line != tt.line || tooLong != tt.tooLong {
			t.Fatalf("#%d: %q %v %v", i, line, tooLong, err)
		}
	}
	if _, _, err := nextLine(br); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestRepl_WriterCannotClear(t *testing.T) {
	got, err := run(t, nil, "5\nclear\n", "repl")
	if err != nil {
		t.Fatalf("repl: %v", err)
	}
	kit.MustContain(t, got, "five and 00/100 dollars")
}

func TestVersion(t *testing.T) {
	got, err := run(t, nil, "", "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	kit.MustContain(t, got, "dollarwords dev")
}
