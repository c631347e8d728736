package yard

import "github.com/POPASMALINOIS/control-de-muelles/core/model"

// WaitingQueue is the ordered set of displaced trucks. Insertion order only
// matters for display; selection is always explicit or driven by the
// pre-assigned dock.
type WaitingQueue struct {
	entries []model.WaitingEntry
}

// Enqueue appends an entry.
func (q *WaitingQueue) Enqueue(e model.WaitingEntry) {
	q.entries = append(q.entries, e)
}

// Get returns the entry with the given id.
func (q *WaitingQueue) Get(id string) (model.WaitingEntry, bool) {
	for _, e := range q.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.WaitingEntry{}, false
}

// Remove deletes and returns the entry with the given id.
func (q *WaitingQueue) Remove(id string) (model.WaitingEntry, bool) {
	for i, e := range q.entries {
		if e.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return e, true
		}
	}
	return model.WaitingEntry{}, false
}

// AutoForDock returns the entry whose pre-assigned dock equals number. At
// most one such entry should exist; the first in queue order wins.
func (q *WaitingQueue) AutoForDock(number int) (model.WaitingEntry, bool) {
	for _, e := range q.entries {
		if e.PreassignedDock == number {
			return e, true
		}
	}
	return model.WaitingEntry{}, false
}

// SetPreassigned records the dock reserved for an entry.
func (q *WaitingQueue) SetPreassigned(id string, number int) bool {
	for i := range q.entries {
		if q.entries[i].ID == id {
			q.entries[i].PreassignedDock = number
			return true
		}
	}
	return false
}

// List returns the entries in queue order.
func (q *WaitingQueue) List() []model.WaitingEntry {
	out := make([]model.WaitingEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len returns the queue length.
func (q *WaitingQueue) Len() int { return len(q.entries) }
