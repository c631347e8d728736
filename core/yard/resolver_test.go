package yard

import (
	"testing"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(testConfig(), nil, nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func batch(zone int, recs ...model.ImportRecord) model.ImportBatch {
	return model.ImportBatch{Source: "test.xlsx", Zone: zone, Records: recs}
}

func TestImportBatch_AppliesToFreeDock(t *testing.T) {
	e := newTestEngine(t)
	sum := e.ImportBatch(batch(2, model.ImportRecord{
		Dock: 320, Carrier: "ACME", Cargo: "Madrid", ScheduledArrival: "08:00",
	}))
	if sum != (model.ImportSummary{Applied: 1}) {
		t.Fatalf("summary %+v", sum)
	}
	d, err := e.Dock(320)
	if err != nil {
		t.Fatalf("dock: %v", err)
	}
	if !d.Occupied() || d.Carrier != "ACME" || d.Cargo != "Madrid" || d.Zone != 2 || d.ScheduledArrival != "08:00" {
		t.Fatalf("dock not populated: %#v", d)
	}
}

func TestImportBatch_SkipsStrayRows(t *testing.T) {
	e := newTestEngine(t)
	sum := e.ImportBatch(batch(2,
		model.ImportRecord{Dock: 311, Carrier: "ACME", Cargo: "Madrid"}, // out of range
		model.ImportRecord{Dock: 320, Carrier: "", Cargo: "Madrid"},     // missing carrier
		model.ImportRecord{Dock: 321, Carrier: "ACME", Cargo: "  "},     // missing cargo
		model.ImportRecord{Dock: 322, Carrier: "ACME", Cargo: "Bilbao"},
	))
	if sum != (model.ImportSummary{Applied: 1, Skipped: 3}) {
		t.Fatalf("summary %+v", sum)
	}
	if len(e.Waiting()) != 0 {
		t.Fatalf("stray rows must not enter the waiting queue")
	}
}

func TestImportBatch_CrossZoneConflict(t *testing.T) {
	e := newTestEngine(t)
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid"}))

	sum := e.ImportBatch(batch(5, model.ImportRecord{Dock: 320, Carrier: "Globex", Cargo: "Lyon"}))
	if sum != (model.ImportSummary{Conflicts: 1}) {
		t.Fatalf("summary %+v", sum)
	}

	// The dock keeps the first-applied zone's data.
	d, _ := e.Dock(320)
	if d.Carrier != "ACME" || d.Zone != 2 {
		t.Fatalf("dock clobbered by conflicting import: %#v", d)
	}

	waiting := e.Waiting()
	if len(waiting) != 1 {
		t.Fatalf("expected one waiting entry, got %d", len(waiting))
	}
	w := waiting[0]
	if w.Carrier != "Globex" || w.Zone != 5 || w.PreassignedDock != 320 {
		t.Fatalf("waiting entry %#v", w)
	}
	if w.ID == "" {
		t.Fatalf("waiting entry has no id")
	}
}

func TestImportBatch_SameZoneOverwrites(t *testing.T) {
	e := newTestEngine(t)
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid"}))
	sum := e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Sevilla"}))
	if sum != (model.ImportSummary{Applied: 1}) {
		t.Fatalf("summary %+v", sum)
	}
	d, _ := e.Dock(320)
	if d.Cargo != "Sevilla" {
		t.Fatalf("same-zone reimport should overwrite, got %#v", d)
	}
}

func TestImportBatch_UndefinedZoneApplies(t *testing.T) {
	e := newTestEngine(t)
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid"}))
	sum := e.ImportBatch(batch(0, model.ImportRecord{Dock: 320, Carrier: "Initech", Cargo: "Porto"}))
	if sum != (model.ImportSummary{Applied: 1}) {
		t.Fatalf("summary %+v", sum)
	}
	d, _ := e.Dock(320)
	if d.Carrier != "Initech" || d.Zone != 0 {
		t.Fatalf("zone-less import should apply directly: %#v", d)
	}
}

func TestImportBatch_LaterRowsWinWithinBatch(t *testing.T) {
	e := newTestEngine(t)
	sum := e.ImportBatch(batch(3,
		model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid"},
		model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Valencia"},
	))
	if sum != (model.ImportSummary{Applied: 2}) {
		t.Fatalf("summary %+v", sum)
	}
	d, _ := e.Dock(320)
	if d.Cargo != "Valencia" {
		t.Fatalf("later row should win: %#v", d)
	}
}

func TestImportBatch_PreservesOperatorData(t *testing.T) {
	e := newTestEngine(t)
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid", ScheduledArrival: "08:00"}))
	note := "forklift damage"
	arrival := "08:20"
	if err := e.Edit(320, model.DockEdit{IncidentNote: &note, ActualArrival: &arrival}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	e.ImportBatch(batch(2, model.ImportRecord{Dock: 320, Carrier: "ACME", Cargo: "Madrid", ScheduledArrival: "09:00"}))
	d, _ := e.Dock(320)
	if d.ActualArrival != "08:20" || d.IncidentNote != "forklift damage" {
		t.Fatalf("reimport should keep operator data: %#v", d)
	}
	if d.ScheduledArrival != "09:00" {
		t.Fatalf("schedule not refreshed: %#v", d)
	}
}
