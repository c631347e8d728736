package model

// Dock represents one physical loading bay of the yard. Docks exist for the
// whole configured range and are never destroyed; a released dock becomes
// empty, not removed.
type Dock struct {
	Number int `json:"number"`
	// Zone is the organizational side (1-9) the current load belongs to.
	// Zero means unknown.
	Zone               int    `json:"zone,omitempty"`
	Carrier            string `json:"carrier,omitempty"`
	Cargo              string `json:"cargo,omitempty"`
	ScheduledArrival   string `json:"scheduled_arrival,omitempty"`
	ActualArrival      string `json:"actual_arrival,omitempty"`
	ScheduledDeparture string `json:"scheduled_departure,omitempty"`
	ActualDeparture    string `json:"actual_departure,omitempty"`
	Plate              string `json:"plate,omitempty"`
	Seal               string `json:"seal,omitempty"`
	IncidentNote       string `json:"incident_note,omitempty"`
	Remarks            string `json:"remarks,omitempty"`

	// PreAssigned marks a free dock earmarked for a waiting truck. It is
	// mutually exclusive with an occupied dock.
	PreAssigned bool `json:"pre_assigned,omitempty"`
	// ReservedWaitingID back-references the waiting entry the dock is
	// reserved for. It is informational, not ownership.
	ReservedWaitingID string `json:"reserved_waiting_id,omitempty"`
}

// Occupied reports whether the dock currently holds a load.
func (d Dock) Occupied() bool { return d.Carrier != "" }

// DockEdit is a partial, operator-driven update. Nil fields are left
// untouched; set fields are trimmed and stored as unset when empty.
type DockEdit struct {
	Zone               *int
	Carrier            *string
	Cargo              *string
	ScheduledArrival   *string
	ActualArrival      *string
	ScheduledDeparture *string
	ActualDeparture    *string
	Plate              *string
	Seal               *string
	IncidentNote       *string
	Remarks            *string
}
