package model

import "time"

// HistoryRecord is the immutable snapshot of a dock taken when its load was
// finalized. Records are append-only; archival and export are external
// concerns.
type HistoryRecord struct {
	Dock               int       `json:"dock"`
	Zone               int       `json:"zone"`
	Carrier            string    `json:"carrier"`
	Cargo              string    `json:"cargo"`
	ScheduledArrival   string    `json:"scheduled_arrival,omitempty"`
	ActualArrival      string    `json:"actual_arrival,omitempty"`
	ScheduledDeparture string    `json:"scheduled_departure,omitempty"`
	ActualDeparture    string    `json:"actual_departure,omitempty"`
	Plate              string    `json:"plate,omitempty"`
	Seal               string    `json:"seal,omitempty"`
	IncidentNote       string    `json:"incident_note,omitempty"`
	Remarks            string    `json:"remarks,omitempty"`
	FinalizedAt        time.Time `json:"finalized_at"`
}
