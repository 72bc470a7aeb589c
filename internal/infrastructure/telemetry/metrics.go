package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
)

// ClientMetrics records the outcome of every backend call.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type ClientMetrics struct {
	mu sync.Mutex

	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	mutationsFailed *prometheus.CounterVec
	otel            *otelInstruments

	server    *http.Server
	lastError error
}

// NewClientMetrics creates metrics registered on a private registry.
func NewClientMetrics() *ClientMetrics {
	registry := prometheus.NewRegistry()

	m := &ClientMetrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalog_admin",
				Name:      "api_requests_total",
				Help:      "Total number of requests sent to the catalog API.",
			},
			[]string{"method", "resource", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "catalog_admin",
				Name:      "api_request_duration_seconds",
				Help:      "Duration of catalog API requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "resource"},
		),
		mutationsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalog_admin",
				Name:      "mutation_failures_total",
				Help:      "Create, update and delete operations that failed.",
			},
			[]string{"entity", "operation"},
		),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.mutationsFailed)
	return m
}

// ObserveRequest records a finished request. status is 0 for transport errors.
func (m *ClientMetrics) ObserveRequest(method, resource string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	statusLabel := "error"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}
	m.requestsTotal.WithLabelValues(method, resource, statusLabel).Inc()
	m.requestDuration.WithLabelValues(method, resource).Observe(elapsed.Seconds())
	if m.otel != nil {
		m.otel.observeRequest(method, resource, statusLabel, elapsed)
	}
}

// MutationFailed counts a failed create, update or delete.
func (m *ClientMetrics) MutationFailed(entity, operation string) {
	if m == nil {
		return
	}
	m.mutationsFailed.WithLabelValues(entity, operation).Inc()
	if m.otel != nil {
		m.otel.mutationFailed(entity, operation)
	}
}

// UseMeter also records every observation on meter. Call it before the
// metrics are shared.
func (m *ClientMetrics) UseMeter(meter metric.Meter) error {
	inst, err := newOTelInstruments(meter)
	if err != nil {
		return err
	}
	m.otel = inst
	return nil
}

// Registry exposes the underlying registry, mainly for tests.
func (m *ClientMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the exposition handler.
func (m *ClientMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Serve starts an exposition endpoint on addr. It returns the bound address.
func (m *ClientMetrics) Serve(addr, path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.server != nil {
		return "", fmt.Errorf("metrics server already running")
	}
	if path == "" {
		path = "/metrics"
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("starting metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())
	m.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srv := m.server
	go func() {
		// Serve only returns once Stop shuts the server down or the listener fails
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.mu.Lock()
			m.lastError = err
			m.mu.Unlock()
		}
	}()

	return ln.Addr().String(), nil
}

// LastError returns the error that stopped the exposition server, if any.
func (m *ClientMetrics) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastError
}

// Stop shuts the exposition endpoint down if it is running.
func (m *ClientMetrics) Stop(ctx context.Context) error {
	m.mu.Lock()
	srv := m.server
	m.server = nil
	m.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
