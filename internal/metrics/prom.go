// Package metrics records dispatch instrumentation in Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink implements the sweep's metrics contract with Prometheus
// collectors: sweep count, per-result assignment attempts, and two gauges
// describing the unassigned backlog.
type PromSink struct {
	sweeps    prometheus.Counter
	attempts  *prometheus.CounterVec
	backlog   prometheus.Gauge
	oldestAge prometheus.Gauge
}

// NewPromSink registers dispatch metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	sweeps := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_sweeps_total",
		Help: "Total number of reconciliation sweeps started",
	})
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_assignment_attempts_total",
		Help: "Assignment attempts by outcome",
	}, []string{"result"})
	backlog := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dispatch_unassigned_backlog",
		Help: "Unassigned delivery records at the start of the last sweep",
	})
	oldestAge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dispatch_oldest_unassigned_age_seconds",
		Help: "Age of the oldest unassigned delivery record",
	})

	if err := reg.Register(sweeps); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			sweeps = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(attempts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			attempts = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(backlog); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			backlog = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(oldestAge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			oldestAge = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		sweeps:    sweeps,
		attempts:  attempts,
		backlog:   backlog,
		oldestAge: oldestAge,
	}, nil
}

// SweepStarted counts one reconciliation sweep.
func (s *PromSink) SweepStarted() {
	s.sweeps.Inc()
}

// AssignmentResult counts one assignment attempt by outcome.
func (s *PromSink) AssignmentResult(result string) {
	s.attempts.WithLabelValues(result).Inc()
}

// SetUnassignedBacklog records the backlog size observed by a sweep.
func (s *PromSink) SetUnassignedBacklog(count int) {
	s.backlog.Set(float64(count))
}

// SetOldestUnassignedAge records how stale the oldest backlog record is.
// An empty backlog reports zero.
func (s *PromSink) SetOldestUnassignedAge(age time.Duration) {
	s.oldestAge.Set(age.Seconds())
}
