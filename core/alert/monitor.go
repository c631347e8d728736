package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/logger"
	"github.com/POPASMALINOIS/control-de-muelles/core/model"
	"github.com/POPASMALINOIS/control-de-muelles/core/timepolicy"
	"github.com/POPASMALINOIS/control-de-muelles/internal/eventbus"
)

// Kind identifies the alert condition.
type Kind string

const (
	// KindDepartureImminent fires when a dock's scheduled departure is at
	// most 30 minutes away.
	KindDepartureImminent Kind = "departure_imminent"
	// KindIncident fires for an explicit incident note or a late arrival.
	KindIncident Kind = "incident"
)

// Event is one derived alert for one dock at one sweep.
type Event struct {
	Kind               Kind      `json:"kind"`
	Dock               int       `json:"dock"`
	Zone               int       `json:"zone,omitempty"`
	Carrier            string    `json:"carrier,omitempty"`
	ScheduledDeparture string    `json:"scheduled_departure,omitempty"`
	Time               time.Time `json:"time"`
}

// Source is the read-only view of the yard the monitor sweeps over.
type Source interface {
	Docks() []model.Dock
}

// Config defines the monitor interval.
type Config struct {
	IntervalSeconds int `json:"interval_seconds"`
}

// SetDefaults applies the once-per-minute default.
func (c *Config) SetDefaults() {
	if c.IntervalSeconds == 0 {
		c.IntervalSeconds = 60
	}
}

// Validate checks the interval is usable.
func (c Config) Validate() error {
	if c.IntervalSeconds < 0 {
		return fmt.Errorf("interval_seconds must not be negative")
	}
	return nil
}

// Monitor periodically recomputes alert state from the source.
type Monitor struct {
	src      Source
	bus      *eventbus.Bus[Event]
	log      logger.Logger
	interval time.Duration
}

// New creates a Monitor publishing to bus.
func New(cfg Config, src Source, bus *eventbus.Bus[Event], log logger.Logger) *Monitor {
	cfg.SetDefaults()
	return &Monitor{
		src:      src,
		bus:      bus,
		log:      log,
		interval: time.Duration(cfg.IntervalSeconds) * time.Second,
	}
}

// Run sweeps immediately and then on every tick until the context is
// cancelled.
func (m *Monitor) Run(ctx context.Context) {
	m.publish(m.Sweep(time.Now()))
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.publish(m.Sweep(now))
		}
	}
}

// Sweep derives the current alert set for the given instant.
func (m *Monitor) Sweep(now time.Time) []Event {
	var events []Event
	for _, d := range m.src.Docks() {
		if timepolicy.DepartureImminent(d.ScheduledDeparture, now) {
			events = append(events, Event{
				Kind:               KindDepartureImminent,
				Dock:               d.Number,
				Zone:               d.Zone,
				Carrier:            d.Carrier,
				ScheduledDeparture: d.ScheduledDeparture,
				Time:               now,
			})
		}
		if timepolicy.HasIncident(d) {
			events = append(events, Event{
				Kind:    KindIncident,
				Dock:    d.Number,
				Zone:    d.Zone,
				Carrier: d.Carrier,
				Time:    now,
			})
		}
	}
	return events
}

func (m *Monitor) publish(events []Event) {
	for _, ev := range events {
		if m.bus != nil {
			m.bus.Publish(ev)
		}
		if m.log != nil {
			m.log.Debugf("alert %s on dock %d", ev.Kind, ev.Dock)
		}
	}
}
