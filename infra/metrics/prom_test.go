package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	s := sink.(*PromSink)

	if err := s.RecordImport(coremetrics.ImportEvent{Zone: 3, Applied: 5, Conflicts: 1, Skipped: 2}); err != nil {
		t.Fatalf("record import: %v", err)
	}
	if got := testutil.ToFloat64(s.importRows.WithLabelValues("3", "applied")); got != 5 {
		t.Fatalf("applied rows = %f", got)
	}
	if got := testutil.ToFloat64(s.importRows.WithLabelValues("3", "skipped")); got != 2 {
		t.Fatalf("skipped rows = %f", got)
	}

	if err := s.RecordConflict(coremetrics.ConflictEvent{Zone: 5, Dock: 320}); err != nil {
		t.Fatalf("record conflict: %v", err)
	}
	if got := testutil.ToFloat64(s.conflicts.WithLabelValues("5")); got != 1 {
		t.Fatalf("conflicts = %f", got)
	}

	if err := s.RecordFinalize(coremetrics.FinalizeEvent{Dock: 320, HandedOff: true}); err != nil {
		t.Fatalf("record finalize: %v", err)
	}
	if got := testutil.ToFloat64(s.finalizations.WithLabelValues("true")); got != 1 {
		t.Fatalf("finalizations = %f", got)
	}

	snap := coremetrics.OccupancySnapshot{Occupied: 10, Free: 49, Waiting: 2, Alerts: 1, Incidents: 3}
	if err := s.RecordOccupancy(snap); err != nil {
		t.Fatalf("record occupancy: %v", err)
	}
	if got := testutil.ToFloat64(s.occupied); got != 10 {
		t.Fatalf("occupied gauge = %f", got)
	}
	if got := testutil.ToFloat64(s.free); got != 49 {
		t.Fatalf("free gauge = %f", got)
	}
}

func TestPromSinkReregistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}
	if err := sink.RecordConflict(coremetrics.ConflictEvent{Zone: 2}); err != nil {
		t.Fatalf("record on reused collectors: %v", err)
	}
}
