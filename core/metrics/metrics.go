package metrics

import "time"

// ImportEvent summarizes one processed schedule batch.
type ImportEvent struct {
	Source    string
	Zone      int
	Applied   int
	Conflicts int
	Skipped   int
	Time      time.Time
}

// ConflictEvent captures a single dock conflict detected during an import.
type ConflictEvent struct {
	Dock         int
	Zone         int
	OccupantZone int
	EntryID      string
	Time         time.Time
}

// FinalizeEvent records the closing of a dock's load.
type FinalizeEvent struct {
	Dock     int
	Zone     int
	Carrier  string
	Archived bool
	// HandedOff is true when a waiting truck occupied the dock immediately.
	HandedOff bool
	Time      time.Time
}

// OccupancySnapshot is a point-in-time view of the yard.
type OccupancySnapshot struct {
	Occupied  int
	Free      int
	Waiting   int
	Alerts    int
	Incidents int
	Time      time.Time
}

// Sink records yard events for observability purposes.
type Sink interface {
	RecordImport(ev ImportEvent) error
	RecordConflict(ev ConflictEvent) error
	RecordFinalize(ev FinalizeEvent) error
	RecordOccupancy(snap OccupancySnapshot) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordImport(ImportEvent) error          { return nil }
func (NopSink) RecordConflict(ConflictEvent) error      { return nil }
func (NopSink) RecordFinalize(FinalizeEvent) error      { return nil }
func (NopSink) RecordOccupancy(OccupancySnapshot) error { return nil }
