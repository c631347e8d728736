package metrics

import coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"

// MultiSink fans yard events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordImport forwards the event to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordImport(ev coremetrics.ImportEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordImport(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordConflict forwards conflict events.
func (m *MultiSink) RecordConflict(ev coremetrics.ConflictEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordConflict(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordFinalize forwards finalization events.
func (m *MultiSink) RecordFinalize(ev coremetrics.FinalizeEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordFinalize(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordOccupancy forwards yard snapshots.
func (m *MultiSink) RecordOccupancy(snap coremetrics.OccupancySnapshot) error {
	for _, s := range m.Sinks {
		if err := s.RecordOccupancy(snap); err != nil {
			return err
		}
	}
	return nil
}
