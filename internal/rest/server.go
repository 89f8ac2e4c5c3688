// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-fips-indicator.
//
// go-fips-indicator is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package rest implements the indicator status server: health probes, the
// Prometheus endpoint and a JSON build/version report.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jeremyhahn/go-fips-indicator/pkg/health"
	"github.com/jeremyhahn/go-fips-indicator/pkg/logging"
)

// Config holds the status server configuration.
type Config struct {
	// Host is the listen address (default: 127.0.0.1).
	Host string

	// Port is the HTTP port to listen on (default: 8080).
	Port int

	// Version is the library version string reported by /api/v1/status.
	Version string

	// MetricsPath mounts the Prometheus handler when non-empty.
	MetricsPath string

	// Checker provides the health probe implementations (optional).
	Checker *health.Checker

	// Logger is the server logger (optional, defaults to info level).
	Logger *logging.Logger

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes.
	WriteTimeout time.Duration

	// IdleTimeout is the maximum amount of time to wait for the next request.
	IdleTimeout time.Duration
}

// Server is the indicator status server.
type Server struct {
	server   *http.Server
	handlers *handlerContext
	logger   *logging.Logger
}

// NewServer creates a status server from cfg.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rest: config is required")
	}

	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 15 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 60 * time.Second
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewLogger(false)
	}

	checker := cfg.Checker
	if checker == nil {
		checker = health.NewChecker()
		checker.MarkStarted()
	}

	s := &Server{
		handlers: &handlerContext{
			version: cfg.Version,
			checker: checker,
		},
		logger: log,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.setupRouter(cfg.MetricsPath),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s, nil
}

// setupRouter configures the chi router with all routes and middleware.
func (s *Server) setupRouter(metricsPath string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestMetrics)

	// Legacy health endpoint (backwards compatibility)
	r.Get("/health", s.handlers.livenessHandler)
	r.Head("/health", s.handlers.livenessHandler)

	// Kubernetes-style health probes
	r.Get("/health/live", s.handlers.livenessHandler)
	r.Get("/health/ready", s.handlers.readinessHandler)
	r.Get("/health/startup", s.handlers.startupHandler)

	if metricsPath != "" {
		r.Handle(metricsPath, promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handlers.statusHandler)
	})

	return r
}

// Start begins serving. It blocks until the server stops and returns nil
// on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting status server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("rest: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping status server")
	return s.server.Shutdown(ctx)
}
