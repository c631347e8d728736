package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

func sampleHistory() []model.HistoryRecord {
	return []model.HistoryRecord{
		{
			Dock: 320, Zone: 2, Carrier: "ACME", Cargo: "Madrid",
			ScheduledArrival: "08:00", ActualArrival: "08:10",
			Plate: "1234-ABC", IncidentNote: "late arrival",
			FinalizedAt: time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC),
		},
		{Dock: 321, Zone: 5, Carrier: "Globex", Cargo: "Lyon"},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleHistory()); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var decoded []model.HistoryRecord
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Carrier != "ACME" || decoded[1].Dock != 321 {
		t.Fatalf("decoded %#v", decoded)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleHistory()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "dock" || rows[0][12] != "finalized_at" {
		t.Fatalf("header %v", rows[0])
	}
	if rows[1][0] != "320" || rows[1][2] != "ACME" {
		t.Fatalf("row 1: %v", rows[1])
	}
	if !strings.HasPrefix(rows[1][12], "2025-03-14T16:00:00") {
		t.Fatalf("finalized_at %q", rows[1][12])
	}
}
