package yard

import (
	"encoding/json"
	"fmt"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

// state is the on-disk shape of the engine. The configured dock range is
// authoritative, not the blob's keys: docks absent from a blob restore as
// empty slots.
type state struct {
	Version int                   `json:"version"`
	MinDock int                   `json:"min_dock"`
	MaxDock int                   `json:"max_dock"`
	Docks   []model.Dock          `json:"docks,omitempty"`
	Waiting []model.WaitingEntry  `json:"waiting,omitempty"`
	History []model.HistoryRecord `json:"history,omitempty"`
}

const stateVersion = 1

// Serialize renders the whole engine state as one opaque blob for an
// external store. Empty dock slots are elided.
func (e *Engine) Serialize() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	min, max := e.reg.Bounds()
	st := state{Version: stateVersion, MinDock: min, MaxDock: max}
	for _, d := range e.reg.List() {
		if d != (model.Dock{Number: d.Number}) {
			st.Docks = append(st.Docks, d)
		}
	}
	st.Waiting = e.queue.List()
	st.History = append(st.History, e.history...)
	return json.Marshal(st)
}

// Restore replaces the engine state from a blob produced by Serialize.
// Docks outside the engine's configured range are dropped; docks missing
// from the blob stay empty.
func (e *Engine) Restore(blob []byte) error {
	var st state
	if err := json.Unmarshal(blob, &st); err != nil {
		return fmt.Errorf("decode state: %w", err)
	}
	if st.Version > stateVersion {
		return fmt.Errorf("state version %d not supported", st.Version)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	min, max := e.reg.Bounds()
	for n := min; n <= max; n++ {
		e.reg.set(model.Dock{Number: n})
	}
	for _, d := range st.Docks {
		if d.Number < min || d.Number > max {
			e.log.Warnf("dropping dock %d outside range [%d,%d]", d.Number, min, max)
			continue
		}
		e.reg.set(d)
	}
	e.queue = &WaitingQueue{entries: append([]model.WaitingEntry(nil), st.Waiting...)}
	e.history = append([]model.HistoryRecord(nil), st.History...)
	return nil
}
