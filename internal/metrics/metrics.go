// Package metrics publishes store activity to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/store"
)

// Recorder is a store.Hook exporting mutation counts and collection size
type Recorder struct {
	gatherer        prometheus.Gatherer
	mutations       *prometheus.CounterVec
	projects        prometheus.Gauge
	completed       prometheus.Gauge
	persistFailures prometheus.Counter
}

// NewRecorder registers the portfolio collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		gatherer: reg,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_store_mutations_total",
			Help: "Successful project store mutations by operation.",
		}, []string{"op"}),
		projects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_projects",
			Help: "Projects currently in the store.",
		}),
		completed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_projects_completed",
			Help: "Projects currently marked completed.",
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_persist_failures_total",
			Help: "Failed writes of the project collection to storage.",
		}),
	}
	reg.MustRegister(
		r.mutations,
		r.projects,
		r.completed,
		r.persistFailures,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) AfterMutation(op store.Operation, snapshot []domain.Project) {
	r.mutations.WithLabelValues(string(op)).Inc()
	r.Observe(snapshot)
}

// Observe sets the gauges from a snapshot; used once after restore.
func (r *Recorder) Observe(snapshot []domain.Project) {
	completed := 0
	for _, p := range snapshot {
		if p.Completed() {
			completed++
		}
	}
	r.projects.Set(float64(len(snapshot)))
	r.completed.Set(float64(completed))
}

// PersistFailed matches persistence.WithFailureHandler.
func (r *Recorder) PersistFailed(store.Operation, error) {
	r.persistFailures.Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
