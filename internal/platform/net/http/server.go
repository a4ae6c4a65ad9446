package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"housepricing/internal/platform/config"
	"housepricing/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// Server owns the root chi mux and the listener lifecycle
type Server struct {
	mux   *chi.Mux
	srv   *http.Server
	grace time.Duration
}

// NewServer reads PORT (default :4000; a bare number gets a colon) and
// SHUTDOWN_GRACE (default 10s) from cfg
func NewServer(cfg config.Conf) *Server {
	mux := chi.NewRouter()
	return &Server{
		mux:   mux,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		srv: &http.Server{
			Addr:              listenAddr(cfg.MayString("PORT", ":4000")),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
	}
}

func listenAddr(s string) string {
	if _, _, err := net.SplitHostPort(s); err == nil {
		return s
	}
	return ":" + s
}

// Router exposes the root mux for mounting
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Handler is the root handler
func (s *Server) Handler() http.Handler { return s.mux }

// Run listens and serves until ctx ends or serving fails, then drains
// in flight requests for up to the grace period
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("http: listen %s: %w", s.srv.Addr, err)
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("grace", s.grace).Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
		defer cancel()
		return s.srv.Shutdown(sctx)
	})
	return g.Wait()
}
