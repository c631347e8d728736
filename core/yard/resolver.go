package yard

import (
	"strings"
	"time"

	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

// ImportBatch reconciles a batch of candidate assignments against the dock
// table, in row order. Rows with an out-of-range dock number or a missing
// carrier or cargo are skipped silently; a dock occupied by a different zone
// is a conflict and the incoming truck is queued with the target dock
// remembered as its pre-assigned dock. Everything else overwrites the dock.
// Later rows of the same batch may overwrite earlier ones without conflict,
// since each row is judged against the registry state at the time it is
// processed.
func (e *Engine) ImportBatch(batch model.ImportBatch) model.ImportSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()
	var sum model.ImportSummary
	for _, rec := range batch.Records {
		rec.Carrier = strings.TrimSpace(rec.Carrier)
		rec.Cargo = strings.TrimSpace(rec.Cargo)
		if !e.reg.inRange(rec.Dock) || rec.Carrier == "" || rec.Cargo == "" {
			sum.Skipped++
			continue
		}
		current := e.reg.docks[rec.Dock]
		if current.Occupied() && batch.Zone != 0 && current.Zone != batch.Zone {
			// Two zones scheduled for the same physical bay: the dock keeps
			// the first-applied load, the later truck waits and remembers
			// where it wanted to go.
			entry := model.WaitingEntry{
				ID:               e.newEntryID(batch.Zone, rec.Dock),
				Zone:             batch.Zone,
				Carrier:          rec.Carrier,
				Cargo:            rec.Cargo,
				ScheduledArrival: rec.ScheduledArrival,
				Plate:            rec.Plate,
				Seal:             rec.Seal,
				Remarks:          rec.Remarks,
				PreassignedDock:  rec.Dock,
			}
			e.queue.Enqueue(entry)
			sum.Conflicts++
			ev := coremetrics.ConflictEvent{
				Dock:         rec.Dock,
				Zone:         batch.Zone,
				OccupantZone: current.Zone,
				EntryID:      entry.ID,
				Time:         now,
			}
			if err := e.sink.RecordConflict(ev); err != nil {
				e.log.Errorf("record conflict: %v", err)
			}
			continue
		}
		if err := e.reg.ApplyImport(rec.Dock, rec, batch.Zone); err != nil {
			// Range was checked above; treat a failed write as a stray row.
			sum.Skipped++
			continue
		}
		sum.Applied++
	}

	e.log.Infof("import %s: %d applied, %d conflicts, %d skipped",
		batch.Source, sum.Applied, sum.Conflicts, sum.Skipped)
	ev := coremetrics.ImportEvent{
		Source:    batch.Source,
		Zone:      batch.Zone,
		Applied:   sum.Applied,
		Conflicts: sum.Conflicts,
		Skipped:   sum.Skipped,
		Time:      now,
	}
	if err := e.sink.RecordImport(ev); err != nil {
		e.log.Errorf("record import: %v", err)
	}
	e.recordOccupancy(now)
	return sum
}
