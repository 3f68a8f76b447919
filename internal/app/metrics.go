package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"krishak-delivery/internal/config"
	"krishak-delivery/internal/http/debugserver"
	"krishak-delivery/internal/logx"
	"krishak-delivery/internal/metrics"
)

// appMetrics holds every collector the service and the worker export.
type appMetrics struct {
	registry          *prometheus.Registry
	rateLimitExceeded prometheus.Counter
	notifyRetries     prometheus.Counter
	transitions       *prometheus.CounterVec
	outboxRelayed     *prometheus.CounterVec
	jobEvents         *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func newAppMetrics() (*appMetrics, error) {
	m := &appMetrics{
		registry:          prometheus.NewRegistry(),
		rateLimitExceeded: metrics.NewRateLimitExceededTotal(),
		notifyRetries:     metrics.NewPaymentNotifyRetriesTotal(),
		transitions:       metrics.NewAssignmentTransitionsTotal(),
		outboxRelayed:     metrics.NewOutboxRelayedTotal(),
		jobEvents:         metrics.NewJobEventsTotal(),
		httpRequests:      metrics.NewHTTPRequestsTotal(),
		httpDuration:      metrics.NewHTTPRequestDuration(),
	}
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rateLimitExceeded,
		m.notifyRetries,
		m.transitions,
		m.outboxRelayed,
		m.jobEvents,
		m.httpRequests,
		m.httpDuration,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *appMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func newDebugServer(cfg *config.Config, m *appMetrics, logger logx.Logger) *debugserver.Server {
	return debugserver.New(debugserver.Config{
		Addr: cfg.Debug.Addr,
		User: cfg.Debug.User,
		Pass: cfg.Debug.Pass,
	}, m.handler(), logger)
}
