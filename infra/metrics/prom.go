package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
)

// PromSink records yard events in Prometheus metrics.
type PromSink struct {
	importRows    *prometheus.CounterVec
	conflicts     *prometheus.CounterVec
	finalizations *prometheus.CounterVec
	occupied      prometheus.Gauge
	free          prometheus.Gauge
	waiting       prometheus.Gauge
	alerts        prometheus.Gauge
	incidents     prometheus.Gauge
}

// NewPromSink registers yard metrics on the default Prometheus registerer.
// The Prometheus server should be started separately using cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yard_import_rows_total",
			Help: "Imported schedule rows by outcome",
		}, []string{"zone", "result"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yard_dock_conflicts_total",
			Help: "Cross-zone dock conflicts detected during imports",
		}, []string{"zone"}),
		finalizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yard_finalizations_total",
			Help: "Dock finalizations by hand-off outcome",
		}, []string{"handed_off"}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "yard_docks_occupied",
			Help: "Docks currently holding a load",
		}),
		free: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "yard_docks_free",
			Help: "Docks currently free",
		}),
		waiting: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "yard_waiting_trucks",
			Help: "Trucks in the waiting queue",
		}),
		alerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "yard_departure_alerts",
			Help: "Docks with an imminent scheduled departure",
		}),
		incidents: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "yard_incidents",
			Help: "Docks with an incident note or late arrival",
		}),
	}

	collectors := map[string]prometheus.Collector{
		"import_rows":   s.importRows,
		"conflicts":     s.conflicts,
		"finalizations": s.finalizations,
		"occupied":      s.occupied,
		"free":          s.free,
		"waiting":       s.waiting,
		"alerts":        s.alerts,
		"incidents":     s.incidents,
	}
	for name, c := range collectors {
		if err := reg.Register(c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				switch name {
				case "import_rows":
					s.importRows = are.ExistingCollector.(*prometheus.CounterVec)
				case "conflicts":
					s.conflicts = are.ExistingCollector.(*prometheus.CounterVec)
				case "finalizations":
					s.finalizations = are.ExistingCollector.(*prometheus.CounterVec)
				case "occupied":
					s.occupied = are.ExistingCollector.(prometheus.Gauge)
				case "free":
					s.free = are.ExistingCollector.(prometheus.Gauge)
				case "waiting":
					s.waiting = are.ExistingCollector.(prometheus.Gauge)
				case "alerts":
					s.alerts = are.ExistingCollector.(prometheus.Gauge)
				case "incidents":
					s.incidents = are.ExistingCollector.(prometheus.Gauge)
				}
			} else {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordImport increments the row counters for one processed batch.
func (s *PromSink) RecordImport(ev coremetrics.ImportEvent) error {
	zone := strconv.Itoa(ev.Zone)
	s.importRows.WithLabelValues(zone, "applied").Add(float64(ev.Applied))
	s.importRows.WithLabelValues(zone, "conflict").Add(float64(ev.Conflicts))
	s.importRows.WithLabelValues(zone, "skipped").Add(float64(ev.Skipped))
	return nil
}

// RecordConflict counts a single dock conflict.
func (s *PromSink) RecordConflict(ev coremetrics.ConflictEvent) error {
	s.conflicts.WithLabelValues(strconv.Itoa(ev.Zone)).Inc()
	return nil
}

// RecordFinalize counts a finalization.
func (s *PromSink) RecordFinalize(ev coremetrics.FinalizeEvent) error {
	s.finalizations.WithLabelValues(strconv.FormatBool(ev.HandedOff)).Inc()
	return nil
}

// RecordOccupancy sets the yard gauges.
func (s *PromSink) RecordOccupancy(snap coremetrics.OccupancySnapshot) error {
	s.occupied.Set(float64(snap.Occupied))
	s.free.Set(float64(snap.Free))
	s.waiting.Set(float64(snap.Waiting))
	s.alerts.Set(float64(snap.Alerts))
	s.incidents.Set(float64(snap.Incidents))
	return nil
}
