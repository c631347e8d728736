package yard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

// Registry owns the fixed-size table of dock slots. It is not safe for
// concurrent use on its own; the Engine serializes access.
type Registry struct {
	min, max int
	docks    map[int]model.Dock
}

// NewRegistry creates one empty slot per dock number in [min, max].
func NewRegistry(cfg Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Registry{min: cfg.MinDock, max: cfg.MaxDock, docks: make(map[int]model.Dock)}
	for n := cfg.MinDock; n <= cfg.MaxDock; n++ {
		r.docks[n] = model.Dock{Number: n}
	}
	return r, nil
}

// Bounds returns the closed dock number range.
func (r *Registry) Bounds() (min, max int) { return r.min, r.max }

func (r *Registry) inRange(number int) bool {
	return number >= r.min && number <= r.max
}

// Get returns the dock slot, possibly empty. Numbers outside the range fail
// with ErrNotFound.
func (r *Registry) Get(number int) (model.Dock, error) {
	if !r.inRange(number) {
		return model.Dock{}, fmt.Errorf("dock %d: %w", number, ErrNotFound)
	}
	return r.docks[number], nil
}

// ApplyImport unconditionally overwrites the occupancy fields of the dock
// with the record. It is called only after the conflict resolver has approved
// the write. Any pre-assignment state is cleared since a fresh import
// supersedes manual reservations; actual times and the incident note are
// operator data and survive a re-import.
func (r *Registry) ApplyImport(number int, rec model.ImportRecord, zone int) error {
	if !r.inRange(number) {
		return fmt.Errorf("dock %d: %w", number, ErrOutOfRange)
	}
	d := r.docks[number]
	d.Zone = zone
	d.Carrier = rec.Carrier
	d.Cargo = rec.Cargo
	d.ScheduledArrival = rec.ScheduledArrival
	d.ScheduledDeparture = rec.ScheduledDeparture
	d.Plate = rec.Plate
	d.Seal = rec.Seal
	d.Remarks = rec.Remarks
	d.PreAssigned = false
	d.ReservedWaitingID = ""
	r.docks[number] = d
	return nil
}

// Edit applies an operator-driven partial update. String fields are trimmed;
// an empty string after trimming is stored as unset, preserving the
// set-versus-unset distinction the incident and occupancy checks rely on.
func (r *Registry) Edit(number int, edit model.DockEdit) error {
	if !r.inRange(number) {
		return fmt.Errorf("dock %d: %w", number, ErrOutOfRange)
	}
	d := r.docks[number]
	if edit.Zone != nil {
		d.Zone = *edit.Zone
	}
	setTrimmed := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setTrimmed(&d.Carrier, edit.Carrier)
	setTrimmed(&d.Cargo, edit.Cargo)
	setTrimmed(&d.ScheduledArrival, edit.ScheduledArrival)
	setTrimmed(&d.ActualArrival, edit.ActualArrival)
	setTrimmed(&d.ScheduledDeparture, edit.ScheduledDeparture)
	setTrimmed(&d.ActualDeparture, edit.ActualDeparture)
	setTrimmed(&d.Plate, edit.Plate)
	setTrimmed(&d.Seal, edit.Seal)
	setTrimmed(&d.IncidentNote, edit.IncidentNote)
	setTrimmed(&d.Remarks, edit.Remarks)
	if d.Occupied() {
		d.PreAssigned = false
		d.ReservedWaitingID = ""
	}
	r.docks[number] = d
	return nil
}

// MarkArrived stamps the actual arrival time on an occupied dock. A dock
// without a carrier fails with ErrInvalidState; an already recorded arrival
// is left untouched.
func (r *Registry) MarkArrived(number int, at time.Time) error {
	if !r.inRange(number) {
		return fmt.Errorf("dock %d: %w", number, ErrOutOfRange)
	}
	d := r.docks[number]
	if !d.Occupied() {
		return fmt.Errorf("dock %d has no carrier: %w", number, ErrInvalidState)
	}
	if d.ActualArrival != "" {
		return nil
	}
	d.ActualArrival = at.Format("15:04")
	r.docks[number] = d
	return nil
}

// Clear resets every field except the number. Clearing an empty dock is a
// no-op, so the operation is idempotent.
func (r *Registry) Clear(number int) error {
	if !r.inRange(number) {
		return fmt.Errorf("dock %d: %w", number, ErrOutOfRange)
	}
	r.docks[number] = model.Dock{Number: number}
	return nil
}

// List returns all dock slots ordered by number.
func (r *Registry) List() []model.Dock {
	out := make([]model.Dock, 0, len(r.docks))
	for _, d := range r.docks {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// OccupiedCount returns the number of docks currently holding a load.
func (r *Registry) OccupiedCount() int {
	n := 0
	for _, d := range r.docks {
		if d.Occupied() {
			n++
		}
	}
	return n
}

// releaseReservation clears the pre-assignment state of every dock reserved
// for the given waiting entry. An entry holds at most one reservation, so
// moving or handing it off must release the old dock first.
func (r *Registry) releaseReservation(entryID string) {
	for n, d := range r.docks {
		if d.ReservedWaitingID == entryID {
			d.PreAssigned = false
			d.ReservedWaitingID = ""
			r.docks[n] = d
		}
	}
}

// set replaces a slot wholesale. Used by hand-off and restore paths that
// build the full dock value themselves.
func (r *Registry) set(d model.Dock) {
	r.docks[d.Number] = d
}
