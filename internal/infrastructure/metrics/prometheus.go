package metrics

import (
	"context"
	"time"

	"boq_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "boq"

// PropagationRecorder exports propagation outcomes as Prometheus metrics.
type PropagationRecorder struct {
	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	rowsWritten *prometheus.CounterVec
}

var _ interfaces.IMetricsRecorder = (*PropagationRecorder)(nil)

// NewPropagationRecorder registers the propagation collectors on reg.
func NewPropagationRecorder(reg prometheus.Registerer) (*PropagationRecorder, error) {
	r := &PropagationRecorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "propagation",
			Name:      "operations_total",
			Help:      "Propagation operations by outcome.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "propagation",
			Name:      "duration_seconds",
			Help:      "Time spent in one propagation operation including its transaction.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		rowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "propagation",
			Name:      "rows_written_total",
			Help:      "Derived rows written by committed propagation operations.",
		}, []string{"kind", "action"}),
	}

	for _, c := range []prometheus.Collector{r.operations, r.duration, r.rowsWritten} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *PropagationRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	status := "ok"
	if !success {
		status = "error"
	}
	r.operations.WithLabelValues(operation, status).Inc()
	r.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (r *PropagationRecorder) RowsWritten(kind, action string, n int) {
	if n <= 0 {
		return
	}
	r.rowsWritten.WithLabelValues(kind, action).Add(float64(n))
}
