// Package metrics records the outcome of an allocation run in a Prometheus
// registry that is written out as a node-exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/examseat/internal/domain"
	"github.com/alexanderramin/examseat/internal/seating"
	"github.com/prometheus/client_golang/prometheus"
)

// RunMetrics holds the collectors of one run.
type RunMetrics struct {
	registry    *prometheus.Registry
	seated      *prometheus.CounterVec
	shortfall   prometheus.Counter
	clashes     prometheus.Counter
	allocations prometheus.Counter
	duration    prometheus.Gauge
}

// NewRunMetrics registers the run collectors on a fresh registry.
func NewRunMetrics() *RunMetrics {
	registry := prometheus.NewRegistry()

	seated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "examseat_students_seated_total",
		Help: "Student seats assigned, by session",
	}, []string{"session"})

	shortfall := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "examseat_shortfall_students_total",
		Help: "Students that could not be seated",
	})

	clashes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "examseat_clashes_total",
		Help: "Co-scheduled course pairs sharing students",
	})

	allocations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "examseat_allocations_total",
		Help: "Allocation records produced",
	})

	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "examseat_run_duration_seconds",
		Help: "Wall time of the last run",
	})

	registry.MustRegister(seated, shortfall, clashes, allocations, duration)

	return &RunMetrics{
		registry:    registry,
		seated:      seated,
		shortfall:   shortfall,
		clashes:     clashes,
		allocations: allocations,
		duration:    duration,
	}
}

// Observe records a finished run.
func (m *RunMetrics) Observe(res *seating.Result, elapsed time.Duration) {
	if m == nil || res == nil {
		return
	}
	for _, s := range domain.Sessions {
		m.seated.WithLabelValues(string(s))
	}
	for _, a := range res.Allocations {
		m.seated.WithLabelValues(string(a.Session)).Add(float64(len(a.Students)))
	}
	m.allocations.Add(float64(len(res.Allocations)))
	m.shortfall.Add(float64(res.ShortfallCount()))
	m.clashes.Add(float64(res.ClashCount()))
	m.duration.Set(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the registry to path in the text exposition format.
func (m *RunMetrics) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating metrics directory: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
