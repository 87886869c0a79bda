package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	"dollarwords/internal/platform/config"
	"dollarwords/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const shutdownGrace = 10 * time.Second

// Server serves a chi mux and drains it when its context ends
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server

	mu    sync.Mutex
	bound string
}

// NewServer reads PORT from cfg (":4000" when unset), CORE_API_PORT under the API prefix
func NewServer(cfg config.Conf) *Server {
	m := chi.NewRouter()
	return &Server{
		mux: m,
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("PORT", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       time.Minute,
		},
	}
}

// Router returns the mux as a Router
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the listening address once Run has bound, the configured one before
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != "" {
		return s.bound
	}
	return s.srv.Addr
}

// Run listens and serves until the listener fails or ctx ends; on ctx end it
// waits up to shutdownGrace for in flight requests
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.bound = ln.Addr().String()
	s.mu.Unlock()

	log := logger.Named("http")
	log.Info().Str("addr", s.Addr()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		return ignoreClosed(err)
	case <-ctx.Done():
	}

	log.Info().Msg("http draining")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	return ignoreClosed(<-errc)
}

func ignoreClosed(err error) error {
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}
	return err
}
