// Package api configures the debug listener that can run next to a scan. It
// exposes the run's metrics and the pprof handlers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"vdpscanner/internal/config"
	"vdpscanner/pkg/controller"
	"vdpscanner/pkg/logger"

	"go.uber.org/zap"
)

// Options holds configuration for the debug listener.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// ShutdownTimeout bounds Shutdown.
	ShutdownTimeout time.Duration
}

// NewOptions constructs Options from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		MetricsPath:       cfg.HTTP.MetricsPath,
		ShutdownTimeout:   cfg.GracefulShutdownTimeout,
	}
}

// Server is a running debug listener.
type Server struct {
	srv     *http.Server
	ln      net.Listener
	timeout time.Duration
	done    chan struct{}
}

// NewHandler returns the routes of the debug listener wrapped in the logging
// middleware. Request logs inherit the logger of ctx.
func NewHandler(ctx context.Context, metrics http.Handler, opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(opts.MetricsPath, metrics)
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	return controller.WithLogger(ctx, mux)
}

// Start binds opts.Addr and serves the debug routes in the background.
func Start(ctx context.Context, metrics http.Handler, opts Options) (*Server, error) {
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("could not listen on %s: %w", opts.Addr, err)
	}

	s := &Server{
		srv: &http.Server{
			Handler:           NewHandler(ctx, metrics, opts),
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
		},
		ln:      ln,
		timeout: opts.ShutdownTimeout,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(s.done)

		logger.Info(ctx, "debug listener started", zap.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "debug listener stopped", zap.Error(err))
		}
	}()

	return s, nil
}

// Addr returns the address the listener is bound to.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops accepting requests and waits for in-flight ones, up to the
// configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown debug listener: %w", err)
	}
	<-s.done

	return nil
}
