// Package timepolicy computes alert, lateness and incident predicates from
// wall-clock time and HH:MM schedule strings. All functions are pure and
// deterministic given now; callers re-evaluate them as the clock advances.
package timepolicy

import (
	"regexp"
	"strconv"
	"time"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

var clockPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// MinutesOfDay parses an HH:MM string into minutes since midnight. The
// second value is false when the input is not a valid clock time.
func MinutesOfDay(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return 0, false
	}
	return h*60 + min, true
}

// DepartureImminent reports whether the scheduled departure, taken on the
// current date, lies strictly in the future and no more than 30 minutes
// away. Unparseable or past-due input yields false; past-due is a separate
// lateness state, not an imminent-departure alert.
func DepartureImminent(scheduledDeparture string, now time.Time) bool {
	mins, ok := MinutesOfDay(scheduledDeparture)
	if !ok {
		return false
	}
	departure := time.Date(now.Year(), now.Month(), now.Day(), mins/60, mins%60, 0, 0, now.Location())
	diff := departure.Sub(now)
	return diff > 0 && diff <= 30*time.Minute
}

// LateArrival reports whether the actual arrival is later than the scheduled
// one. Both times are compared within a single day; day rollover (scheduled
// 23:50, arrived 00:10) is a known limitation and not handled.
func LateArrival(scheduledArrival, actualArrival string) bool {
	sched, ok := MinutesOfDay(scheduledArrival)
	if !ok {
		return false
	}
	actual, ok := MinutesOfDay(actualArrival)
	if !ok {
		return false
	}
	return actual > sched
}

// HasIncident reports whether the dock carries an explicit incident note or
// a late arrival. It is derived on every read, never stored.
func HasIncident(d model.Dock) bool {
	return d.IncidentNote != "" || LateArrival(d.ScheduledArrival, d.ActualArrival)
}
