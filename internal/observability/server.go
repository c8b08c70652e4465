// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

// Package observability provides kernel metrics and HTTP endpoints for
// scraping them, with health probes.
package observability

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/oops"

	"github.com/umlkit/umlkit/internal/model"
)

// ReadinessChecker returns whether the service is ready.
type ReadinessChecker func() bool

// Metrics contains Prometheus metrics for the modeling kernel. It
// implements model.Instrumentation, so a factory built with
// model.WithInstrumentation(metrics) reports through it.
type Metrics struct {
	ElementsCreated      *prometheus.CounterVec
	PresentationsDropped *prometheus.CounterVec
	RecipeFailures       *prometheus.CounterVec
}

// NewMetrics creates and registers kernel metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ElementsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "umlkit_elements_created_total",
				Help: "Total number of model elements created by kind",
			},
			[]string{"kind"},
		),
		PresentationsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "umlkit_presentations_dropped_total",
				Help: "Total number of presentations dropped by subject kind",
			},
			[]string{"subject_kind"},
		),
		RecipeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "umlkit_recipe_failures_total",
				Help: "Total number of rejected relationship recipes by kind",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(m.ElementsCreated)
	reg.MustRegister(m.PresentationsDropped)
	reg.MustRegister(m.RecipeFailures)

	return m
}

// ElementCreated implements model.Instrumentation.
func (m *Metrics) ElementCreated(kind model.Kind) {
	m.ElementsCreated.WithLabelValues(string(kind)).Inc()
}

// PresentationDropped implements model.Instrumentation.
func (m *Metrics) PresentationDropped(subject model.Kind) {
	m.PresentationsDropped.WithLabelValues(string(subject)).Inc()
}

// RecipeFailed implements model.Instrumentation.
func (m *Metrics) RecipeFailed(kind model.Kind) {
	m.RecipeFailures.WithLabelValues(string(kind)).Inc()
}

// Server provides HTTP endpoints for observability (metrics and health probes).
type Server struct {
	addr       string
	listener   net.Listener
	httpServer *http.Server
	registry   *prometheus.Registry
	metrics    *Metrics
	isReady    ReadinessChecker
	running    atomic.Bool
}

// NewServer creates a new observability server.
// addr: listen address in "host:port" format (e.g., "127.0.0.1:9100").
func NewServer(addr string, readinessChecker ReadinessChecker) *Server {
	// Use a private registry to avoid polluting the global one
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics := NewMetrics(registry)

	return &Server{
		addr:     addr,
		registry: registry,
		metrics:  metrics,
		isReady:  readinessChecker,
	}
}

// Metrics returns the kernel metrics for wiring into a factory.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start begins serving observability endpoints. It returns an error
// channel that receives any error from the HTTP server after startup;
// the channel is closed when the server stops gracefully.
func (s *Server) Start() (<-chan error, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, oops.Errorf("observability server already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.running.Store(false)
		return nil, oops.With("addr", s.addr).Wrap(err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/healthz/liveness", s.handleLiveness)
	mux.HandleFunc("/healthz/readiness", s.handleReadiness)

	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpServer = httpSrv

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if serveErr := httpSrv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			slog.Error("observability server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	slog.Info("observability server started", "addr", listener.Addr().String())
	return errCh, nil
}

// Stop gracefully shuts down the observability server.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			// Restore running state on failure so the server can be stopped again
			s.running.Store(true)
			return oops.With("operation", "shutdown_observability_server").Wrap(err)
		}
	}

	slog.Info("observability server stopped")
	return nil
}

// Addr returns the address the server is listening on, or "" if stopped.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// handleLiveness returns 200 if the process is running.
func (s *Server) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // health check write error is acceptable, client may disconnect
	w.Write([]byte("ok\n"))
}

// handleReadiness returns 200 if the service is ready, 503 otherwise.
func (s *Server) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if s.isReady == nil || s.isReady() {
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck // health check write error is acceptable, client may disconnect
		w.Write([]byte("ok\n"))
		return
	}

	w.WriteHeader(http.StatusServiceUnavailable)
	//nolint:errcheck // health check write error is acceptable, client may disconnect
	w.Write([]byte("not ready\n"))
}
