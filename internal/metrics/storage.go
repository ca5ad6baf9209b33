package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StorageMetrics observes service level storage operations.
type StorageMetrics interface {
	// RecordOperation records a completed operation with its duration and
	// outcome.
	RecordOperation(operation string, duration time.Duration, err error)
	// RecordReleasedObjects counts objects dropped after a delete.
	RecordReleasedObjects(n int)
}

type storageMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	releasedObjects   prometheus.Counter
}

func NewStorageMetrics() StorageMetrics {
	if !IsEnabled() {
		return NoopStorageMetrics{}
	}
	return NewStorageMetricsWith(GetRegistry())
}

func NewStorageMetricsWith(reg prometheus.Registerer) StorageMetrics {
	return &storageMetrics{
		operationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "repovault_storage_operations_total",
				Help: "Total number of storage operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		operationDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "repovault_storage_operation_duration_seconds",
				Help: "Duration of storage operations in seconds",
				Buckets: []float64{
					0.001, // 1ms
					0.005, // 5ms
					0.01,  // 10ms
					0.05,  // 50ms
					0.1,   // 100ms
					0.5,   // 500ms
					1.0,   // 1s
					5.0,   // 5s
				},
			},
			[]string{"operation"},
		),
		releasedObjects: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "repovault_released_objects_total",
				Help: "Total number of objects removed because no file referenced them",
			},
		),
	}
}

func (m *storageMetrics) RecordOperation(operation string, duration time.Duration, err error) {
	m.operationsTotal.WithLabelValues(operation, status(err)).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *storageMetrics) RecordReleasedObjects(n int) {
	if n > 0 {
		m.releasedObjects.Add(float64(n))
	}
}

type NoopStorageMetrics struct{}

func (NoopStorageMetrics) RecordOperation(string, time.Duration, error) {}
func (NoopStorageMetrics) RecordReleasedObjects(int)                   {}
