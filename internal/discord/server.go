package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serverShutdownTimeout = 5 * time.Second
	serverReadTimeout     = 5 * time.Second
)

// HTTPServer exposes the bot's health and metrics endpoints
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer serves /healthz and /metrics on port
func NewHTTPServer(port string, checker HealthChecker) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           newRouter(checker),
			ReadHeaderTimeout: serverReadTimeout,
		},
	}
}

func newRouter(checker HealthChecker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", HandleHealth(checker))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// Start serves in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord internal HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord internal HTTP server failed", "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord internal HTTP server shutdown failed", "error", err)
	}
}
