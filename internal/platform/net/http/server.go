package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	"commlog/internal/platform/config"
	perr "commlog/internal/platform/errors"
	"commlog/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server is a thin wrapper over chi + stdlib http.Server, good for one Run
type Server struct {
	mu    sync.RWMutex
	addr  string
	mux   *chi.Mux
	srv   *stdhttp.Server
	ready chan struct{}
}

// NewServer creates a zero-value friendly http server
// JSON not found / method not allowed fallbacks are installed before opts run,
// chi propagates them to every router mounted later
// opts receive the *chi.Mux so callers can mount routes/mw
// reads API_PORT, READ_HEADER_TIMEOUT, WRITE_TIMEOUT and IDLE_TIMEOUT from cfg
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("API_PORT", ":3001")
	m := chi.NewRouter()
	m.NotFound(Handle(func(*stdhttp.Request) Response { return Error(perr.ErrNotFound) }))
	m.MethodNotAllowed(Handle(func(*stdhttp.Request) Response { return Error(perr.ErrMethodNotAllowed) }))
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 90*time.Second),
		},
		ready: make(chan struct{}),
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the listening address, the bound one once Ready is closed
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// Ready is closed once Run has bound its listener
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Run binds the listener and serves until Shutdown
// a closed server returns nil, bind failures are returned as is
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.Addr())
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	close(s.ready)

	logger.Named("http").Info().Str("addr", s.Addr()).Msg("http listening")
	err = s.srv.Serve(ln)
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Named("http").Info().Msg("http shutting down")
	return s.srv.Shutdown(ctx)
}
