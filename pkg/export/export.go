package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

// WriteJSON writes the finalization history to w in JSON format.
func WriteJSON(w io.Writer, records []model.HistoryRecord) error {
	enc := json.NewEncoder(w)
	return enc.Encode(records)
}

// WriteCSV writes the finalization history to w in CSV format.
func WriteCSV(w io.Writer, records []model.HistoryRecord) error {
	cw := csv.NewWriter(w)
	header := []string{
		"dock", "zone", "carrier", "cargo", "scheduled_arrival",
		"actual_arrival", "scheduled_departure", "actual_departure",
		"plate", "seal", "incident_note", "remarks", "finalized_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Dock),
			strconv.Itoa(rec.Zone),
			rec.Carrier,
			rec.Cargo,
			rec.ScheduledArrival,
			rec.ActualArrival,
			rec.ScheduledDeparture,
			rec.ActualDeparture,
			rec.Plate,
			rec.Seal,
			rec.IncidentNote,
			rec.Remarks,
			rec.FinalizedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
