package interfaces

import (
	"context"
	"time"
)

// IMetricsRecorder receives propagation operation outcomes.
type IMetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
	// RowsWritten counts derived-row writes; kind is "item" or "item_resource",
	// action is "upsert" or "delete".
	RowsWritten(kind, action string, n int)
}
