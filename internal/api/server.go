package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/thanquan654/mood-diary/internal/config"
	"github.com/thanquan654/mood-diary/internal/logging"
)

// Server runs the HTTP listener until its context is cancelled.
type Server struct {
	srv             *http.Server
	log             logging.Logger
	shutdownTimeout time.Duration
}

// NewServer applies the configured timeouts. errLog receives net/http's own
// errors and may be nil.
func NewServer(cfg config.HTTPConfig, h http.Handler, l logging.Logger, errLog *log.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      h,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     errLog,
		},
		log:             l,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run serves until ctx is done, then drains in-flight requests for at most
// the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.log.Info(ctx, "starting http server", "address", ln.Addr().String())
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info(ctx, "stopping http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
