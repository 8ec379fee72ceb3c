// Package metrics exposes Prometheus collectors for the token exchange gate
// and the credential janitor.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bot_host"

// Registry owns the collectors of the process. It is safe for concurrent use.
type Registry struct {
	registry *prometheus.Registry

	exchanges        *prometheus.CounterVec
	exchangeDuration *prometheus.HistogramVec
	purged           prometheus.Counter
}

// NewRegistry registers every collector on a fresh registry, together with
// the Go runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		exchanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "exchanges_total",
			Help:      "Requests seen by the token exchange gate, by outcome.",
		}, []string{"outcome"}),
		exchangeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "exchange_duration_seconds",
			Help:      "Duration of token issuer calls made by the gate.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "credentials",
			Name:      "purged_total",
			Help:      "Stale credentials deleted by the janitor.",
		}),
	}

	r.registry.MustRegister(
		r.exchanges,
		r.exchangeDuration,
		r.purged,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveExchange counts an exchange. Unmatched requests never reach the
// issuer, so no duration is recorded for them.
func (r *Registry) ObserveExchange(outcome string, duration time.Duration) {
	r.exchanges.WithLabelValues(outcome).Inc()
	if duration > 0 {
		r.exchangeDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	}
}

// ObservePurge adds n purged credentials.
func (r *Registry) ObservePurge(n int64) {
	if n > 0 {
		r.purged.Add(float64(n))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
