// Package sink is the output capability collaborators hand to the currency tools.
// The core never writes anywhere itself; a CLI, a log or a test buffer decides
package sink

import (
	"io"
	"strings"
	"sync"

	"dollarwords/internal/platform/logger"
)

// Sink receives one block of text at a time
type Sink interface {
	Emit(text string)
}

// Clearer is implemented by sinks that can be wiped
type Clearer interface {
	Clear()
}

// Func adapts a plain function to Sink
type Func func(text string)

// Emit implements Sink
func (f Func) Emit(text string) { f(text) }

// Comment emits text unless it is empty
func Comment(s Sink, text string) {
	if s == nil || text == "" {
		return
	}
	s.Emit(text)
}

// Clear wipes s when it supports clearing and reports whether it did
func Clear(s Sink) bool {
	c, ok := s.(Clearer)
	if !ok {
		return false
	}
	c.Clear()
	return true
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// Writer emits each text followed by a newline to w
func Writer(w io.Writer) Sink { return &writerSink{w: w} }

func (s *writerSink) Emit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, text+"\n"); err != nil {
		logger.Named("sink").Error().Err(err).Msg("sink write failed")
	}
}

type loggerSink struct{ log *logger.Logger }

// Logger emits each text as an info event on l, multi-line blocks keep their newlines
func Logger(l *logger.Logger) Sink {
	if l == nil {
		l = logger.Named("sink")
	}
	return loggerSink{log: l}
}

func (s loggerSink) Emit(text string) { s.log.Info().Msg(text) }

// Buffer keeps emitted lines in memory, like a log element on a page
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// Emit implements Sink
func (b *Buffer) Emit(text string) {
	b.mu.Lock()
	b.lines = append(b.lines, text)
	b.mu.Unlock()
}

// Clear implements Clearer
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.lines = nil
	b.mu.Unlock()
}

// Lines returns a copy of what was emitted since the last Clear
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// String joins the lines the way Writer would have printed them
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}
