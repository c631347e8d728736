package model

// WaitingEntry is a truck displaced by an import conflict or queued manually,
// waiting for a dock. The ID is engine-generated and unique for the process
// lifetime.
type WaitingEntry struct {
	ID               string `json:"id"`
	Zone             int    `json:"zone,omitempty"`
	Carrier          string `json:"carrier"`
	Cargo            string `json:"cargo"`
	ScheduledArrival string `json:"scheduled_arrival,omitempty"`
	Plate            string `json:"plate,omitempty"`
	Seal             string `json:"seal,omitempty"`
	Remarks          string `json:"remarks,omitempty"`
	// PreassignedDock is the dock reserved for this entry, either the dock
	// the truck was displaced from or one reserved by an operator. Zero
	// means none.
	PreassignedDock int `json:"preassigned_dock,omitempty"`
}
