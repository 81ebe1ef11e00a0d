package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer serves the ops endpoints: /healthz and /metrics.
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates the ops server on the given port.
func NewHTTPServer(port int, bot *Bot) *HTTPServer {
	srv := &HTTPServer{bot: bot}

	r := chi.NewRouter()
	r.Get("/healthz", srv.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	srv.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}
	return srv
}

// Start serves in the background.
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting ops HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Ops HTTP server failed", "error", err)
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
