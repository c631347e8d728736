package yard

import (
	"errors"
	"testing"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

var finalizeNow = time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)

func TestFinalize_ArchivesAndClears(t *testing.T) {
	e := newTestEngine(t)
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid"}))

	res, err := e.Finalize(320, finalizeNow)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !res.Archived || res.SuccessorID != "" {
		t.Fatalf("result %+v", res)
	}

	history := e.History()
	if len(history) != 1 {
		t.Fatalf("expected one history record, got %d", len(history))
	}
	rec := history[0]
	if rec.Carrier != "ACME" || rec.Dock != 320 || rec.Zone != 2 || !rec.FinalizedAt.Equal(finalizeNow) {
		t.Fatalf("history record %#v", rec)
	}

	d, _ := e.Dock(320)
	if d != (model.Dock{Number: 320}) {
		t.Fatalf("dock not cleared: %#v", d)
	}
}

func TestFinalize_AutoHandOff(t *testing.T) {
	e := newTestEngine(t)
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid"}))
	e.ImportBatch(batch(5, model.ImportRecord{Dock: 320, Carrier: "Globex", Cargo: "Lyon"}))

	res, err := e.Finalize(320, finalizeNow)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if !res.Archived || res.SuccessorID == "" {
		t.Fatalf("result %+v", res)
	}

	// History holds the pre-finalization occupant.
	if rec := e.History()[0]; rec.Carrier != "ACME" {
		t.Fatalf("history carrier %q", rec.Carrier)
	}
	// The dock transitions straight to the displaced truck.
	d, _ := e.Dock(320)
	if d.Carrier != "Globex" || d.Zone != 5 {
		t.Fatalf("successor not handed off: %#v", d)
	}
	if len(e.Waiting()) != 0 {
		t.Fatalf("successor should leave the queue")
	}
}

func TestFinalize_ManualReservationFallback(t *testing.T) {
	e := newTestEngine(t)
	id, err := e.Enqueue(model.WaitingEntry{Zone: 4, Carrier: "Initech", Cargo: "Porto"})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := e.Reserve(id, 325); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	// Finalizing the empty reserved dock appends nothing but pulls in the
	// reserved truck; this is how a bay is pre-loaded.
	res, err := e.Finalize(325, finalizeNow)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.Archived {
		t.Fatalf("empty dock must not reach history")
	}
	if res.SuccessorID != id {
		t.Fatalf("successor %q, want %q", res.SuccessorID, id)
	}
	d, _ := e.Dock(325)
	if d.Carrier != "Initech" || d.PreAssigned || d.ReservedWaitingID != "" {
		t.Fatalf("dock after pre-load: %#v", d)
	}
	if len(e.History()) != 0 {
		t.Fatalf("no history expected")
	}
}

func TestFinalize_AutoBeatsManualReservation(t *testing.T) {
	e := newTestEngine(t)
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid"}))
	// A conflict pins Globex to dock 320.
	e.ImportBatch(batch(5, model.ImportRecord{Dock: 320, Carrier: "Globex", Cargo: "Lyon"}))
	// Another truck is queued by hand without a pre-assignment. The
	// conflict-assigned truck must win the dock.
	manual, err := e.Enqueue(model.WaitingEntry{Zone: 5, Carrier: "Initech", Cargo: "Porto"})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	res, err := e.Finalize(320, finalizeNow)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.SuccessorID == manual {
		t.Fatalf("manually queued truck must not beat the conflict-assigned one")
	}
	d, _ := e.Dock(320)
	if d.Carrier != "Globex" {
		t.Fatalf("dock occupant %q", d.Carrier)
	}
}

func TestFinalize_EmptyDockNoReservation(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Finalize(330, finalizeNow)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.Archived || res.SuccessorID != "" {
		t.Fatalf("result %+v", res)
	}
	if len(e.History()) != 0 {
		t.Fatalf("no history expected")
	}
}

func TestFinalize_OutOfRange(t *testing.T) {
	e := newTestEngine(t)
	if _, err := e.Finalize(311, finalizeNow); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMutualExclusion(t *testing.T) {
	e := newTestEngine(t)
	id, err := e.Enqueue(model.WaitingEntry{Zone: 2, Carrier: "ACME", Cargo: "Madrid"})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := e.Reserve(id, 320); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	// Importing onto the reserved dock supersedes the reservation.
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "Globex", Cargo: "Lyon"}))
	for _, d := range e.Docks() {
		if d.Occupied() && d.PreAssigned {
			t.Fatalf("dock %d is both occupied and pre-assigned", d.Number)
		}
	}
}
