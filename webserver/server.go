package webserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// WebAppFile is the mini app entry page expected in the served directory
const WebAppFile = "telegram_webapp.html"

const shutdownTimeout = 5 * time.Second

// Config holds static server configuration
type Config struct {
	Port int
	Dir  string
}

// WithCORS sets the permissive CORS headers on every response
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// NewHandler serves dir with CORS headers
func NewHandler(dir string) http.Handler {
	return WithCORS(http.FileServer(http.Dir(dir)))
}

// Server serves a directory of static files for local mini app previews
type Server struct {
	config Config
	server *http.Server
}

// New creates a server. instrument may be nil.
func New(config Config, instrument func(http.Handler) http.Handler) *Server {
	handler := NewHandler(config.Dir)
	if instrument != nil {
		handler = instrument(handler)
	}

	return &Server{
		config: config,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run listens on the configured port and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("cannot listen on port %d: %w", s.config.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	port := s.config.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}

	log.WithField("dir", s.config.Dir).Infof("Static server running at http://localhost:%d", port)
	log.Infof("Open http://localhost:%d/%s in a browser to preview the mini app", port, WebAppFile)
	log.Infof("Mini app URL for the bot: http://localhost:%d/%s", port, WebAppFile)
	log.Info("Press Ctrl+C to stop")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("static server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("static server shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
