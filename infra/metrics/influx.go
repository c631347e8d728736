package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/POPASMALINOIS/control-de-muelles/core/logger"
	coremetrics "github.com/POPASMALINOIS/control-de-muelles/core/metrics"
	infralogger "github.com/POPASMALINOIS/control-de-muelles/infra/logger"
)

// InfluxSink writes yard events to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      infralogger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns
// a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

// RecordImport writes the batch summary as one point.
func (s *InfluxSink) RecordImport(ev coremetrics.ImportEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("yard_import").
		AddTag("zone", strconv.Itoa(ev.Zone)).
		AddTag("source", ev.Source).
		AddField("applied", ev.Applied).
		AddField("conflicts", ev.Conflicts).
		AddField("skipped", ev.Skipped).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordConflict writes a single conflict event.
func (s *InfluxSink) RecordConflict(ev coremetrics.ConflictEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("yard_conflict").
		AddTag("dock", strconv.Itoa(ev.Dock)).
		AddTag("zone", strconv.Itoa(ev.Zone)).
		AddTag("occupant_zone", strconv.Itoa(ev.OccupantZone)).
		AddField("entry_id", ev.EntryID).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordFinalize writes a finalization event.
func (s *InfluxSink) RecordFinalize(ev coremetrics.FinalizeEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("yard_finalize").
		AddTag("dock", strconv.Itoa(ev.Dock)).
		AddTag("zone", strconv.Itoa(ev.Zone)).
		AddTag("handed_off", strconv.FormatBool(ev.HandedOff)).
		AddField("archived", ev.Archived).
		AddField("carrier", ev.Carrier).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordOccupancy writes a yard snapshot.
func (s *InfluxSink) RecordOccupancy(snap coremetrics.OccupancySnapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("yard_occupancy").
		AddField("occupied", snap.Occupied).
		AddField("free", snap.Free).
		AddField("waiting", snap.Waiting).
		AddField("alerts", snap.Alerts).
		AddField("incidents", snap.Incidents).
		SetTime(snap.Time)
	return s.writeAPI.WritePoint(ctx, p)
}
