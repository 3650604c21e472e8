// Package metrics records roster and partitioning activity.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/teamrandomizer/internal/models"
)

// Observer receives session events. Implementations must be cheap and must
// not call back into the session.
type Observer interface {
	EntrantsAdded(n int)
	EntrantsRemoved(n int)
	ImportCompleted(accepted, dropped int, failed bool)
	GroupsGenerated(method models.Method, groups int)
	RosterSize(n int)
}

// Nop discards every event.
type Nop struct{}

var _ Observer = Nop{}

func (Nop) EntrantsAdded(int) {}
func (Nop) EntrantsRemoved(int) {}
func (Nop) ImportCompleted(int, int, bool) {}
func (Nop) GroupsGenerated(models.Method, int) {}
func (Nop) RosterSize(int) {}

// Prometheus implements Observer backed by Prometheus collectors.
type Prometheus struct {
	entrantsAdded   prometheus.Counter
	entrantsRemoved prometheus.Counter
	importRuns      *prometheus.CounterVec
	importDropped   prometheus.Counter
	partitionRuns   *prometheus.CounterVec
	groupsPerRun    *prometheus.HistogramVec
	rosterSize      prometheus.Gauge
}

var _ Observer = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer if nil) under namespace ("teams" if empty).
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "teams"
	}

	p := &Prometheus{
		entrantsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "entrants_added_total",
			Help:      "Entrants added manually or by import.",
		}),
		entrantsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "entrants_removed_total",
			Help:      "Entrants removed individually or by clearing the roster.",
		}),
		importRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "imports_total",
			Help:      "Import attempts by result (ok, failed).",
		}, []string{"result"}),
		importDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "import_tokens_dropped_total",
			Help:      "Imported cells dropped for being blank or not text.",
		}),
		partitionRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "partition",
			Name:      "runs_total",
			Help:      "Partitioning runs by grouping method.",
		}, []string{"method"}),
		groupsPerRun: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "partition",
			Name:      "groups",
			Help:      "Number of groups produced per run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1 .. 128
		}, []string{"method"}),
		rosterSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "size",
			Help:      "Current number of entrants on the roster.",
		}),
	}

	for _, c := range []prometheus.Collector{
		p.entrantsAdded, p.entrantsRemoved, p.importRuns, p.importDropped,
		p.partitionRuns, p.groupsPerRun, p.rosterSize,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return p, nil
}

func (p *Prometheus) EntrantsAdded(n int) {
	p.entrantsAdded.Add(float64(n))
}

func (p *Prometheus) EntrantsRemoved(n int) {
	p.entrantsRemoved.Add(float64(n))
}

func (p *Prometheus) ImportCompleted(accepted, dropped int, failed bool) {
	result := "ok"
	if failed {
		result = "failed"
	}
	p.importRuns.WithLabelValues(result).Inc()
	p.importDropped.Add(float64(dropped))
}

func (p *Prometheus) GroupsGenerated(method models.Method, groups int) {
	p.partitionRuns.WithLabelValues(string(method)).Inc()
	p.groupsPerRun.WithLabelValues(string(method)).Observe(float64(groups))
}

func (p *Prometheus) RosterSize(n int) {
	p.rosterSize.Set(float64(n))
}
