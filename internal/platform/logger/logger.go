// Package logger owns the process zerolog logger and the request scoped
// children handed out by C
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"dollarwords/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project logging type
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level      string
	Format     string // console or json
	Service    string
	Component  string
	Writer     io.Writer // stdout when nil
	WithCaller bool
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_COMPONENT and LOG_CALLER
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:      rc.Get("LEVEL", "debug"),
		Format:     strings.ToLower(rc.Get("FORMAT", "console")),
		Service:    rc.Get("SERVICE", ""),
		Component:  rc.Get("COMPONENT", ""),
		WithCaller: rc.GetBool("CALLER", false),
	}
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := build(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

func build(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		ctx = ctx.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	if opt.WithCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// parseLevel falls back to debug for blank or unknown levels
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keySessionID
)

// WithRequest tags ctx with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// WithSession tags ctx with the currency session being worked on
func WithSession(ctx context.Context, sessionID string) context.Context {
	if sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, keySessionID, sessionID)
}

// C returns a child of the root logger carrying request_id and session_id from ctx
func C(ctx context.Context) *Logger {
	lc := Get().With()
	if v, ok := ctx.Value(keyRequestID).(string); ok {
		lc = lc.Str("request_id", v)
	}
	if v, ok := ctx.Value(keySessionID).(string); ok {
		lc = lc.Str("session_id", v)
	}
	l := lc.Logger()
	return &l
}

// Named returns a child of the root logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
