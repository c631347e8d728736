package excel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
	"github.com/POPASMALINOIS/control-de-muelles/core/yard"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestReadBatchFrom(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Daily schedule"},
		{},
		{"DOCK", "CARRIER", "DESTINATION", "ARRIVAL", "DEPARTURE", "PLATE", "SEAL", "REMARKS"},
		{"320", "ACME", "Madrid", "08:00", "16:30", "1234-ABC", "P-111", "fragile"},
		{"321", "Globex", "Lyon", "", "", "", "", ""},
		{"garage", "Initech", "Porto"}, // non-numeric dock cell
		{},
	})

	batch, err := ReadBatchFrom(buf, "zone_3_monday.xlsx")
	if err != nil {
		t.Fatalf("read batch: %v", err)
	}
	if batch.Zone != 3 || batch.Source != "zone_3_monday.xlsx" {
		t.Fatalf("batch meta: %+v", batch)
	}
	if len(batch.Records) != 2 {
		t.Fatalf("expected 2 records, got %d: %#v", len(batch.Records), batch.Records)
	}
	want := model.ImportRecord{
		Dock: 320, Carrier: "ACME", Cargo: "Madrid",
		ScheduledArrival: "08:00", ScheduledDeparture: "16:30",
		Plate: "1234-ABC", Seal: "P-111", Remarks: "fragile",
	}
	if batch.Records[0] != want {
		t.Fatalf("record 0: %#v", batch.Records[0])
	}
}

func TestReadBatchFrom_HeaderCaseAndSubstrings(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Dock No.", "Carrier name", "Destination city", "Scheduled Arrival"},
		{"330", "ACME", "Bilbao", "07:45"},
	})
	batch, err := ReadBatchFrom(buf, "plain.xlsx")
	if err != nil {
		t.Fatalf("read batch: %v", err)
	}
	if batch.Zone != 0 {
		t.Fatalf("zone should be unknown, got %d", batch.Zone)
	}
	if len(batch.Records) != 1 || batch.Records[0].ScheduledArrival != "07:45" {
		t.Fatalf("records %#v", batch.Records)
	}
}

func TestReadBatchFrom_DepartureCapWins(t *testing.T) {
	buf := workbook(t, [][]any{
		{"DOCK", "CARRIER", "DESTINATION", "ACTUAL DEPARTURE", "DEPARTURE CAP"},
		{"320", "ACME", "Madrid", "15:55", "16:30"},
	})
	batch, err := ReadBatchFrom(buf, "plain.xlsx")
	if err != nil {
		t.Fatalf("read batch: %v", err)
	}
	if len(batch.Records) != 1 || batch.Records[0].ScheduledDeparture != "16:30" {
		t.Fatalf("cap column not bound: %#v", batch.Records)
	}
}

func TestReadBatchFrom_MissingRequiredColumns(t *testing.T) {
	buf := workbook(t, [][]any{
		{"PLATE", "DESTINATION", "ARRIVAL", "DEPARTURE"},
		{"1234-ABC", "Madrid", "08:00", "16:30"},
	})
	_, err := ReadBatchFrom(buf, "broken.xlsx")
	if !errors.Is(err, yard.ErrImportFormat) {
		t.Fatalf("want ErrImportFormat, got %v", err)
	}
}

func TestClockValue(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"08:00", "08:00"},
		{" 8:05 ", "8:05"},
		{"08:00:00", "08:00"},
		{"0.5", "12:00"},
		{"0.34375", "08:15"},
		{"", ""},
		{"soon", ""},
	}
	for _, c := range cases {
		if got := clockValue(c.in); got != c.want {
			t.Fatalf("clockValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
