package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"dollarwords/internal/core/currency"
	perr "dollarwords/internal/platform/errors"
	kit "dollarwords/internal/platform/testkit"
	"dollarwords/internal/services/api/currency/domain"

	"github.com/google/uuid"
)

func in(raw string) domain.ValueInput { return domain.ValueInput{Value: json.RawMessage(raw)} }

func newSvc(t *testing.T, limit int) *Svc {
	t.Helper()
	s := New(currency.Default(), Config{MaxSessions: limit})
	s.now = func() time.Time { return time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC) }
	return s
}

func TestConvert(t *testing.T) {
	s := newSvc(t, 0)
	ctx := context.Background()

	tests := []struct {
		raw   string
		input string
		words string
		valid bool
	}{
		{`1234.38`, "1234.38", "one thousand two hundred thirty four and 38/100 dollars", true},
		{`0`, "0", "zero and 00/100 dollars", true},
		{`-1.01`, "-1.01", "negative one and 01/100 dollars", true},
		{`1e13`, "10000000000000", "ten quadrillion and 00/100 dollars", true},
		{`100000000000001`, "100000000000001", "", false},
		{`"12"`, "12", "", false},
		{`null`, "null", "", false},
		{`true`, "true", "", false},
		{`1e400`, "1e400", "", false},
	}
	for _, tt := range tests {
		got, err := s.Convert(ctx, in(tt.raw))
		if err != nil {
			t.Fatalf("Convert(%s) error: %v", tt.raw, err)
		}
		want := domain.Conversion{Input: tt.input, Words: tt.words, Valid: tt.valid}
		if got != want {
			t.Fatalf("Convert(%s) = %+v want %+v", tt.raw, got, want)
		}
	}
}

func TestConvert_MalformedJSON(t *testing.T) {
	s := newSvc(t, 0)
	_, err := s.Convert(context.Background(), in(`{`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestSession_Lifecycle(t *testing.T) {
	s := newSvc(t, 0)
	ctx := context.Background()

	sess, err := s.Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if sess.CreatedAt != "2025-09-03T13:00:00Z" || sess.Queries != 0 {
		t.Fatalf("opened = %+v", sess)
	}

	h, err := s.History(ctx, sess.ID)
	if err != nil || h.Text != "" {
		t.Fatalf("empty History = %+v, %v", h, err)
	}

	r0, err := s.Record(ctx, sess.ID, in(`1.01`))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	r1, err := s.Record(ctx, sess.ID, in(`"test"`))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if r0.Index != 0 || r1.Index != 1 || r1.Valid {
		t.Fatalf("unexpected records %+v %+v", r0, r1)
	}

	qs, err := s.Queries(ctx, sess.ID)
	if err != nil || len(qs) != 2 || qs[0] != r0 || qs[1] != r1 {
		t.Fatalf("Queries = %+v, %v", qs, err)
	}

	info, err := s.Session(ctx, sess.ID)
	if err != nil || info.Queries != 2 || info.ID != sess.ID || info.CreatedAt != sess.CreatedAt {
		t.Fatalf("Session = %+v, %v", info, err)
	}

	h, err = s.History(ctx, sess.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	want := "CurrencyContainer queries\n" +
		"\t#0. {value = 1.01, currency = one and 01/100 dollars}\n" +
		"\t#1. {value = test, currency = " + currency.InvalidText + "}\n"
	if h.Text != want {
		t.Fatalf("History\n got %q\nwant %q", h.Text, want)
	}

	if err := s.Close(ctx, sess.ID); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := s.History(ctx, sess.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found after close, got %v", err)
	}
	if _, err := s.Session(ctx, sess.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Session after close should be not found, got %v", err)
	}
	if err := s.Close(ctx, sess.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("double close should be not found, got %v", err)
	}
}

func TestSession_BadIDs(t *testing.T) {
	s := newSvc(t, 0)
	ctx := context.Background()

	_, err := s.Record(ctx, "not-a-uuid", in(`1`))
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != perr.FieldSessionID {
		t.Fatalf("expected field id on error, got %v", err)
	}

	_, err = s.Queries(ctx, uuid.NewString())
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSession_Limit(t *testing.T) {
	s := newSvc(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := s.Open(ctx); err != nil {
			t.Fatalf("Open %d: %v", i, err)
		}
	}
	_, err := s.Open(ctx)
	if !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("expected too many requests, got %v", err)
	}
	if s.Sessions() != 2 {
		t.Fatalf("Sessions() = %d", s.Sessions())
	}
}

func TestSession_DeterministicIDs(t *testing.T) {
	s := newSvc(t, 0)
	fixed := uuid.MustParse("9b2f3c1e-6a61-4f6b-a0d2-6f8f5b8e2d11")
	kit.Swap(t, &s.newID, func() uuid.UUID { return fixed })

	sess, err := s.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if sess.ID != fixed.String() {
		t.Fatalf("ID = %q", sess.ID)
	}
}

func TestSession_ConcurrentRecordsKeepEveryEntry(t *testing.T) {
	s := newSvc(t, 0)
	ctx := context.Background()
	sess, err := s.Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Record(ctx, sess.ID, in(`2`)); err != nil {
				t.Errorf("Record: %v", err)
			}
		}()
	}
	wg.Wait()

	qs, err := s.Queries(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Queries: %v", err)
	}
	if len(qs) != n {
		t.Fatalf("got %d records want %d", len(qs), n)
	}
	for i, q := range qs {
		if q.Index != i {
			t.Fatalf("index %d at position %d", q.Index, i)
		}
	}
}

func TestPolicy(t *testing.T) {
	s := newSvc(t, 0)
	p := s.Policy()
	if p.Min != currency.DefaultMin || p.Max != currency.DefaultMax {
		t.Fatalf("Policy bounds = %+v", p)
	}
	if len(p.Magnitudes) != 4 || p.Magnitudes[0] != "quadrillion" {
		t.Fatalf("Policy magnitudes = %v", p.Magnitudes)
	}
}

func TestNew_NilConverterPanics(t *testing.T) {
	kit.MustPanic(t, func() { _ = New(nil, Config{}) })
}
