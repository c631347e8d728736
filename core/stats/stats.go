// Package stats computes arrival statistics over the finalization history
// for reporting.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
	"github.com/POPASMALINOIS/control-de-muelles/core/timepolicy"
)

// Summary aggregates arrival delays in minutes across history records whose
// scheduled and actual arrival times both parse.
type Summary struct {
	// Count is the number of records with comparable arrival times.
	Count int
	// Late is how many of them arrived after schedule.
	Late        int
	MeanDelay   float64
	MedianDelay float64
	P90Delay    float64
}

// ArrivalDelays computes a Summary over the given history. Early arrivals
// contribute negative delays. Day rollover is not handled, matching the
// time-policy comparison rules.
func ArrivalDelays(history []model.HistoryRecord) Summary {
	var delays []float64
	late := 0
	for _, rec := range history {
		sched, ok := timepolicy.MinutesOfDay(rec.ScheduledArrival)
		if !ok {
			continue
		}
		actual, ok := timepolicy.MinutesOfDay(rec.ActualArrival)
		if !ok {
			continue
		}
		d := float64(actual - sched)
		if d > 0 {
			late++
		}
		delays = append(delays, d)
	}
	if len(delays) == 0 {
		return Summary{}
	}
	sort.Float64s(delays)
	return Summary{
		Count:       len(delays),
		Late:        late,
		MeanDelay:   stat.Mean(delays, nil),
		MedianDelay: stat.Quantile(0.5, stat.Empirical, delays, nil),
		P90Delay:    stat.Quantile(0.9, stat.Empirical, delays, nil),
	}
}
