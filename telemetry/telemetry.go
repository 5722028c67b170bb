package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/hava-db/routeguard/cfg"
)

var registry *prometheus.Registry

type Counter interface {
	Inc()
	Add(float64)
}

// CounterVec is a labeled counter family.
type CounterVec interface {
	With(labels ...string) Counter
}

type NoopStat struct{}

func (n NoopStat) Inc() {
}

func (n NoopStat) Add(float64) {
}

type noopCounterVec struct{}

func (n noopCounterVec) With(labels ...string) Counter { return NoopStat{} }

type prometheusCounterVec struct {
	vec *prometheus.CounterVec
}

func (p *prometheusCounterVec) With(labelValues ...string) Counter {
	return p.vec.WithLabelValues(labelValues...)
}

func NewCounter(name string, help string) Counter {
	if registry == nil {
		return NoopStat{}
	}

	ret := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "routeguard",
		Name:      name,
		Help:      help,
	})

	registry.MustRegister(ret)
	return ret
}

func NewCounterVec(name, help string, labels []string) CounterVec {
	if registry == nil {
		return noopCounterVec{}
	}

	ret := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "routeguard",
		Name:      name,
		Help:      help,
	}, labels)

	registry.MustRegister(ret)
	return &prometheusCounterVec{vec: ret}
}

func InitializeTelemetry() {
	if !cfg.Config.Prometheus.Enabled {
		return
	}

	registry = prometheus.NewRegistry()

	// Register process and Go runtime collectors for CPU/memory metrics
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	log.Info().Msg("Prometheus metrics enabled")
}

// GetMetricsHandler returns the HTTP handler for Prometheus metrics.
// Returns nil if Prometheus is not enabled.
func GetMetricsHandler() http.Handler {
	if registry == nil {
		return nil
	}
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
