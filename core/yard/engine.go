package yard

import (
	"fmt"
	"sync"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/logger"
	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
	"github.com/POPASMALINOIS/control-de-muelles/core/model"
	"github.com/POPASMALINOIS/control-de-muelles/core/timepolicy"
)

// Engine owns the dock registry, the waiting queue and the finalization
// history. All operations are synchronous and complete before returning;
// the mutex serializes the single logical operator session against the
// periodic monitor reads.
type Engine struct {
	mu      sync.Mutex
	reg     *Registry
	queue   *WaitingQueue
	history []model.HistoryRecord

	log  logger.Logger
	sink coremetrics.Sink

	lastEntryStamp int64
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// New creates an Engine with one empty slot per dock in the configured
// range. A nil logger or sink falls back to a no-op implementation.
func New(cfg Config, log logger.Logger, sink coremetrics.Sink) (*Engine, error) {
	reg, err := NewRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("dock registry: %w", err)
	}
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Engine{reg: reg, queue: &WaitingQueue{}, log: log, sink: sink}, nil
}

// Bounds returns the closed dock number range.
func (e *Engine) Bounds() (min, max int) { return e.reg.Bounds() }

// Dock returns the slot for the given number.
func (e *Engine) Dock(number int) (model.Dock, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Get(number)
}

// Docks returns all slots ordered by number.
func (e *Engine) Docks() []model.Dock {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.List()
}

// Waiting returns the waiting queue in order.
func (e *Engine) Waiting() []model.WaitingEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.queue.List()
}

// History returns the finalization records appended so far.
func (e *Engine) History() []model.HistoryRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.HistoryRecord, len(e.history))
	copy(out, e.history)
	return out
}

// Edit applies an operator-driven partial update to a dock.
func (e *Engine) Edit(number int, edit model.DockEdit) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.reg.Edit(number, edit); err != nil {
		return err
	}
	e.recordOccupancy(time.Now())
	return nil
}

// MarkArrived stamps the actual arrival time on an occupied dock.
func (e *Engine) MarkArrived(number int, at time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.MarkArrived(number, at)
}

// Clear releases a dock manually, resetting every field but the number.
func (e *Engine) Clear(number int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.reg.Clear(number); err != nil {
		return err
	}
	e.recordOccupancy(time.Now())
	return nil
}

// Enqueue adds a manually evicted truck to the waiting queue and returns
// the generated entry id. Carrier and cargo are required.
func (e *Engine) Enqueue(entry model.WaitingEntry) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if entry.Carrier == "" || entry.Cargo == "" {
		return "", fmt.Errorf("waiting entry needs carrier and cargo: %w", ErrInvalidState)
	}
	entry.ID = e.newEntryID(entry.Zone, entry.PreassignedDock)
	e.queue.Enqueue(entry)
	e.recordOccupancy(time.Now())
	return entry.ID, nil
}

// Reserve earmarks a free dock for a waiting entry. Reserving an occupied or
// already pre-assigned dock fails with ErrInvalidState; reservation and
// occupancy are mutually exclusive.
func (e *Engine) Reserve(entryID string, number int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.queue.Get(entryID); !ok {
		return fmt.Errorf("waiting entry %s: %w", entryID, ErrNotFound)
	}
	d, err := e.reg.Get(number)
	if err != nil {
		return err
	}
	if d.Occupied() {
		return fmt.Errorf("dock %d is occupied: %w", number, ErrInvalidState)
	}
	if d.PreAssigned {
		return fmt.Errorf("dock %d is already reserved: %w", number, ErrInvalidState)
	}
	// Moving a reservation releases the dock it previously pointed at.
	e.reg.releaseReservation(entryID)
	d.PreAssigned = true
	d.ReservedWaitingID = entryID
	e.reg.set(d)
	e.queue.SetPreassigned(entryID, number)
	e.log.Infof("dock %d reserved for waiting entry %s", number, entryID)
	return nil
}

// HandOff moves a waiting entry onto the named dock. The entry's occupancy
// data is transferred, the dock's reservation state is cleared and the entry
// leaves the queue. An unknown entry id fails with ErrNotFound.
func (e *Engine) HandOff(entryID string, number int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.handOffLocked(entryID, number); err != nil {
		return err
	}
	e.recordOccupancy(time.Now())
	return nil
}

func (e *Engine) handOffLocked(entryID string, number int) error {
	if !e.reg.inRange(number) {
		return fmt.Errorf("dock %d: %w", number, ErrOutOfRange)
	}
	entry, ok := e.queue.Remove(entryID)
	if !ok {
		return fmt.Errorf("waiting entry %s: %w", entryID, ErrNotFound)
	}
	// The entry leaves the queue, so any dock still reserved for it must be
	// released or it would stay blocked forever.
	e.reg.releaseReservation(entryID)
	// The dock takes the successor's data wholesale; predecessor actuals
	// and incident notes do not leak onto the new load.
	e.reg.set(model.Dock{
		Number:           number,
		Zone:             entry.Zone,
		Carrier:          entry.Carrier,
		Cargo:            entry.Cargo,
		ScheduledArrival: entry.ScheduledArrival,
		Plate:            entry.Plate,
		Seal:             entry.Seal,
		Remarks:          entry.Remarks,
	})
	e.log.Infof("waiting entry %s handed off to dock %d", entryID, number)
	return nil
}

// BackfillArrivals fills the actual arrival of occupied docks from their
// scheduled arrival when it is still unset. It is idempotent and never
// overwrites operator-entered data, so an external refresh may call it
// freely between manual edits. Returns the number of docks updated.
func (e *Engine) BackfillArrivals() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, d := range e.reg.List() {
		if d.Occupied() && d.ActualArrival == "" && d.ScheduledArrival != "" {
			d.ActualArrival = d.ScheduledArrival
			e.reg.set(d)
			n++
		}
	}
	return n
}

// newEntryID composes a process-unique waiting entry id from the zone, the
// dock the truck was displaced from and a creation timestamp. The stamp is
// bumped when the clock has not advanced since the last id.
func (e *Engine) newEntryID(zone, dock int) string {
	ts := time.Now().UnixNano()
	if ts <= e.lastEntryStamp {
		ts = e.lastEntryStamp + 1
	}
	e.lastEntryStamp = ts
	return fmt.Sprintf("%d-%d-%d", zone, dock, ts)
}

// recordOccupancy pushes a yard snapshot to the metrics sink. Callers hold
// the engine mutex.
func (e *Engine) recordOccupancy(now time.Time) {
	occupied, alerts, incidents := 0, 0, 0
	min, max := e.reg.Bounds()
	for _, d := range e.reg.List() {
		if d.Occupied() {
			occupied++
		}
		if timepolicy.DepartureImminent(d.ScheduledDeparture, now) {
			alerts++
		}
		if timepolicy.HasIncident(d) {
			incidents++
		}
	}
	snap := coremetrics.OccupancySnapshot{
		Occupied:  occupied,
		Free:      max - min + 1 - occupied,
		Waiting:   e.queue.Len(),
		Alerts:    alerts,
		Incidents: incidents,
		Time:      now,
	}
	if err := e.sink.RecordOccupancy(snap); err != nil {
		e.log.Errorf("record occupancy: %v", err)
	}
}
