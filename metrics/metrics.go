// Package metrics provides Prometheus metrics for terminal sessions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so several recorders can coexist in one
// process.
type Recorder struct {
	registry *prometheus.Registry

	sessionsTotal   prometheus.Counter
	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	nodes           prometheus.Gauge
	catalogLoads    *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		sessionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "webterm_sessions_total",
				Help: "Total number of terminal sessions created",
			},
		),

		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webterm_commands_total",
				Help: "Total number of dispatched command lines",
			},
			[]string{"command", "outcome"},
		),

		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "webterm_command_duration_seconds",
				Help:    "Command line duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),

		nodes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "webterm_vfs_nodes",
				Help: "Number of nodes in the most recently used filesystem",
			},
		),

		catalogLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webterm_catalog_loads_total",
				Help: "Total blog catalog loads",
			},
			[]string{"source", "status"},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler returns the Prometheus metrics HTTP handler.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordSession counts a new session.
func (r *Recorder) RecordSession() {
	r.sessionsTotal.Inc()
}

// RecordCommand records one command line by its command word and result kind.
func (r *Recorder) RecordCommand(command, outcome string, duration time.Duration) {
	r.commandsTotal.WithLabelValues(command, outcome).Inc()
	r.commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// SetNodes records the node count of a filesystem.
func (r *Recorder) SetNodes(count int) {
	r.nodes.Set(float64(count))
}

// RecordCatalogLoad records a catalog load.
func (r *Recorder) RecordCatalogLoad(source string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	r.catalogLoads.WithLabelValues(source, status).Inc()
}
