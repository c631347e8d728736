package yard

import (
	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
	"github.com/POPASMALINOIS/control-de-muelles/core/model"
	"time"
)

// FinalizeResult reports what a finalization did.
type FinalizeResult struct {
	// Archived is true when a history record was appended.
	Archived bool
	// SuccessorID names the waiting entry handed onto the dock, if any.
	SuccessorID string
}

// Finalize closes a dock's current load. An occupied dock is snapshotted
// into the history first. The successor is then resolved: a waiting entry
// pre-assigned to this dock wins over a manual reservation, which wins over
// none. With a successor the dock transitions directly to occupied and is
// never observably empty; without one it is cleared. Finalizing an empty
// dock appends nothing but still pulls in a pending successor, which is the
// intended way to pre-load a bay.
func (e *Engine) Finalize(number int, now time.Time) (FinalizeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	d, err := e.reg.Get(number)
	if err != nil {
		return FinalizeResult{}, err
	}

	var res FinalizeResult
	if d.Occupied() {
		e.history = append(e.history, model.HistoryRecord{
			Dock:               d.Number,
			Zone:               d.Zone,
			Carrier:            d.Carrier,
			Cargo:              d.Cargo,
			ScheduledArrival:   d.ScheduledArrival,
			ActualArrival:      d.ActualArrival,
			ScheduledDeparture: d.ScheduledDeparture,
			ActualDeparture:    d.ActualDeparture,
			Plate:              d.Plate,
			Seal:               d.Seal,
			IncidentNote:       d.IncidentNote,
			Remarks:            d.Remarks,
			FinalizedAt:        now,
		})
		res.Archived = true
	}

	if entry, ok := e.queue.AutoForDock(number); ok {
		res.SuccessorID = entry.ID
	} else if d.ReservedWaitingID != "" {
		if _, ok := e.queue.Get(d.ReservedWaitingID); ok {
			res.SuccessorID = d.ReservedWaitingID
		}
	}

	if res.SuccessorID != "" {
		if err := e.handOffLocked(res.SuccessorID, number); err != nil {
			return FinalizeResult{}, err
		}
	} else {
		if err := e.reg.Clear(number); err != nil {
			return FinalizeResult{}, err
		}
	}

	e.log.Infof("dock %d finalized (archived=%v successor=%q)", number, res.Archived, res.SuccessorID)
	ev := coremetrics.FinalizeEvent{
		Dock:      number,
		Zone:      d.Zone,
		Carrier:   d.Carrier,
		Archived:  res.Archived,
		HandedOff: res.SuccessorID != "",
		Time:      now,
	}
	if err := e.sink.RecordFinalize(ev); err != nil {
		e.log.Errorf("record finalize: %v", err)
	}
	e.recordOccupancy(now)
	return res, nil
}
