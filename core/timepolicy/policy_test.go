package timepolicy

import (
	"testing"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestDepartureImminent(t *testing.T) {
	cases := []struct {
		departure string
		now       time.Time
		want      bool
	}{
		{"10:00", at(9, 45), true},
		{"10:00", at(9, 30), true},
		{"10:00", at(9, 29), false},
		{"10:00", at(10, 0), false},  // not strictly in the future
		{"10:00", at(10, 5), false},  // past due is late, not imminent
		{"", at(9, 45), false},
		{"banana", at(9, 45), false},
		{"25:00", at(9, 45), false},
	}
	for _, c := range cases {
		if got := DepartureImminent(c.departure, c.now); got != c.want {
			t.Fatalf("DepartureImminent(%q, %v) = %v, want %v", c.departure, c.now, got, c.want)
		}
	}
}

func TestLateArrival(t *testing.T) {
	cases := []struct {
		scheduled, actual string
		want              bool
	}{
		{"08:00", "08:15", true},
		{"08:00", "08:00", false},
		{"08:00", "07:45", false},
		{"", "08:15", false},
		{"08:00", "", false},
		{"8:00", "8:05", true},
		// Day rollover is not handled: an arrival past midnight compares
		// as earlier than the late-evening schedule.
		{"23:50", "00:10", false},
	}
	for _, c := range cases {
		if got := LateArrival(c.scheduled, c.actual); got != c.want {
			t.Fatalf("LateArrival(%q, %q) = %v, want %v", c.scheduled, c.actual, got, c.want)
		}
	}
}

func TestHasIncident(t *testing.T) {
	if HasIncident(model.Dock{Number: 312}) {
		t.Fatalf("empty dock should have no incident")
	}
	if !HasIncident(model.Dock{Number: 312, IncidentNote: "broken pallet"}) {
		t.Fatalf("incident note should flag an incident")
	}
	late := model.Dock{Number: 312, ScheduledArrival: "08:00", ActualArrival: "08:15"}
	if !HasIncident(late) {
		t.Fatalf("late arrival should flag an incident")
	}
}

func TestMinutesOfDay(t *testing.T) {
	if m, ok := MinutesOfDay("13:30"); !ok || m != 13*60+30 {
		t.Fatalf("MinutesOfDay(13:30) = %d, %v", m, ok)
	}
	if _, ok := MinutesOfDay("13:75"); ok {
		t.Fatalf("minute overflow should not parse")
	}
}
