package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors of one mock server. Each server gets its own
// registry so several servers can run in one test binary.
type Metrics struct {
	registry *prometheus.Registry

	Requests       *prometheus.CounterVec
	StoredMessages prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "telegram_mock_requests_total",
			Help: "Bot API calls served by the mock server",
		}, []string{"method", "outcome"}),
		StoredMessages: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "telegram_mock_stored_messages",
			Help: "Messages currently in the mock message store",
		}),
	}
	m.registry.MustRegister(m.Requests, m.StoredMessages)
	return m
}

func (m *Metrics) Observe(method string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Requests.WithLabelValues(method, outcome).Inc()
}

// Handler returns an http.Handler for Prometheus scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
