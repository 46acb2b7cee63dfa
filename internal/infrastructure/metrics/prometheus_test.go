package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPropagationRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewPropagationRecorder(reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Observe(context.Background(), "attach_work_type", true, 20*time.Millisecond)
	r.Observe(context.Background(), "attach_work_type", false, time.Millisecond)
	r.RowsWritten("item", "upsert", 3)
	r.RowsWritten("item", "delete", 0)

	if got := testutil.ToFloat64(r.operations.WithLabelValues("attach_work_type", "ok")); got != 1 {
		t.Fatalf("expected 1 ok operation, got %v", got)
	}
	if got := testutil.ToFloat64(r.operations.WithLabelValues("attach_work_type", "error")); got != 1 {
		t.Fatalf("expected 1 failed operation, got %v", got)
	}
	if got := testutil.ToFloat64(r.rowsWritten.WithLabelValues("item", "upsert")); got != 3 {
		t.Fatalf("expected 3 upserts, got %v", got)
	}
	if n := testutil.CollectAndCount(r.rowsWritten); n != 1 {
		t.Fatalf("expected zero counts to be skipped, got %d series", n)
	}
	if n := testutil.CollectAndCount(r.duration); n != 1 {
		t.Fatalf("expected one histogram series, got %d", n)
	}

	if _, err := NewPropagationRecorder(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}
