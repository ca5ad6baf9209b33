package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GateMetrics counts permission decisions.
type GateMetrics interface {
	// RecordDecision records one evaluation of check (e.g. "view_repository").
	RecordDecision(check string, granted bool)
}

type gateMetrics struct {
	decisions *prometheus.CounterVec
}

// NewGateMetrics returns a registry-backed GateMetrics, or a no-op one when
// metrics are disabled.
func NewGateMetrics() GateMetrics {
	if !IsEnabled() {
		return NoopGateMetrics{}
	}
	return NewGateMetricsWith(GetRegistry())
}

// NewGateMetricsWith registers the gate collectors on reg.
func NewGateMetricsWith(reg prometheus.Registerer) GateMetrics {
	return &gateMetrics{
		decisions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "repovault_permission_decisions_total",
				Help: "Total number of permission gate evaluations by check and decision",
			},
			[]string{"check", "decision"},
		),
	}
}

func (m *gateMetrics) RecordDecision(check string, granted bool) {
	decision := "denied"
	if granted {
		decision = "granted"
	}
	m.decisions.WithLabelValues(check, decision).Inc()
}

type NoopGateMetrics struct{}

func (NoopGateMetrics) RecordDecision(string, bool) {}
