// Package service contains currency conversion and session workflows
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"dollarwords/internal/core/currency"
	"dollarwords/internal/core/querylog"
	perr "dollarwords/internal/platform/errors"
	"dollarwords/internal/platform/logger"
	"dollarwords/internal/services/api/currency/domain"

	"github.com/google/uuid"
)

// Service defines the service contract for currency
type Service interface{ domain.ServicePort }

// Config tunes the session store
type Config struct {
	MaxSessions int
}

// session is one query log plus the lock that serializes its callers
type session struct {
	mu      sync.Mutex
	log     *querylog.Log
	created time.Time
}

// Svc implements the Service interface
type Svc struct {
	conv *currency.Converter
	cfg  Config

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	now   func() time.Time
	newID func() uuid.UUID
}

// New creates a currency service around conv
func New(conv *currency.Converter, cfg Config) *Svc {
	if conv == nil {
		panic("currency.Service requires a non nil Converter")
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1024
	}
	return &Svc{
		conv:     conv,
		cfg:      cfg,
		sessions: make(map[uuid.UUID]*session),
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Policy returns the active bound policy
func (s *Svc) Policy() domain.Policy {
	p := s.conv.Policy()
	mags := currency.Magnitudes()
	words := make([]string, 0, len(mags))
	for _, m := range mags {
		words = append(words, m.Word)
	}
	return domain.Policy{Min: p.Min, Max: p.Max, Magnitudes: words}
}

// Convert converts a single value without touching any session
func (s *Svc) Convert(ctx context.Context, in domain.ValueInput) (domain.Conversion, error) {
	v, err := decodeValue(in.Value)
	if err != nil {
		return domain.Conversion{}, err
	}
	out := toConversion(v, s.conv.ConvertAny(v))
	if !out.Valid {
		logger.C(ctx).Warn().Str("input", out.Input).Msg("value is not valid")
	}
	return out, nil
}

// Open creates an empty session
func (s *Svc) Open(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()
	if len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		return domain.Session{}, perr.TooManyf("session limit of %d reached", s.cfg.MaxSessions)
	}
	id := s.newID()
	sess := &session{log: querylog.New(s.conv), created: s.now().UTC()}
	s.sessions[id] = sess
	s.mu.Unlock()

	logger.C(logger.WithSession(ctx, id.String())).Debug().Msg("currency session opened")
	return sess.describe(id.String(), 0), nil
}

// Session reports a session and how many queries it holds
func (s *Svc) Session(_ context.Context, id string) (domain.Session, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	sess.mu.Lock()
	n := sess.log.Len()
	sess.mu.Unlock()
	return sess.describe(id, n), nil
}

// Record converts a value and appends it to the session history
func (s *Svc) Record(ctx context.Context, id string, in domain.ValueInput) (domain.QueryRecord, error) {
	v, err := decodeValue(in.Value)
	if err != nil {
		return domain.QueryRecord{}, err
	}
	sess, err := s.lookup(id)
	if err != nil {
		return domain.QueryRecord{}, err
	}

	sess.mu.Lock()
	rec := sess.log.Record(v)
	idx := sess.log.Len() - 1
	sess.mu.Unlock()

	out := domain.QueryRecord{Index: idx, Conversion: toConversion(rec.Input, rec.Output)}
	log := logger.C(logger.WithSession(ctx, id))
	if out.Valid {
		log.Info().Msgf("Currency Query: %s", rec)
	} else {
		log.Warn().Str("input", out.Input).Msg("value is not valid")
	}
	return out, nil
}

// Queries lists a session's records in insertion order
func (s *Svc) Queries(_ context.Context, id string) ([]domain.QueryRecord, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	recs := sess.log.Records()
	sess.mu.Unlock()

	out := make([]domain.QueryRecord, 0, len(recs))
	for i, r := range recs {
		out = append(out, domain.QueryRecord{Index: i, Conversion: toConversion(r.Input, r.Output)})
	}
	return out, nil
}

// History renders the session log as text
func (s *Svc) History(_ context.Context, id string) (domain.History, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return domain.History{}, err
	}
	sess.mu.Lock()
	text := sess.log.Render()
	sess.mu.Unlock()
	return domain.History{SessionID: id, Text: text}, nil
}

// Close drops a session and its history
func (s *Svc) Close(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	_, ok := s.sessions[key]
	delete(s.sessions, key)
	s.mu.Unlock()
	if !ok {
		return perr.NotFoundf("session %s not found", id)
	}
	logger.C(logger.WithSession(ctx, id)).Debug().Msg("currency session closed")
	return nil
}

// Sessions returns the number of open sessions
func (s *Svc) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *session) describe(id string, queries int) domain.Session {
	return domain.Session{ID: id, CreatedAt: s.created.Format(time.RFC3339), Queries: queries}
}

func (s *Svc) lookup(id string) (*session, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	sess, ok := s.sessions[key]
	s.mu.RUnlock()
	if !ok {
		return nil, perr.NotFoundf("session %s not found", id)
	}
	return sess, nil
}

func parseID(id string) (uuid.UUID, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, perr.WithField(perr.InvalidArgf("invalid session id %q", id), perr.FieldSessionID)
	}
	return key, nil
}

// decodeValue turns the raw JSON value into a Go value, numbers stay json.Number
// so the logged input keeps its exact spelling until formatted
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, perr.WithField(perr.JSONErrf("invalid value: %v", err), perr.FieldValue)
	}
	return v, nil
}

func toConversion(input any, r currency.Result) domain.Conversion {
	words, ok := r.Words()
	return domain.Conversion{Input: currency.FormatInput(input), Words: words, Valid: ok}
}
