// Package metrics defines interfaces and event types for recording yard
// activity. Sinks like PromSink and InfluxSink under infra record import
// summaries, conflicts, finalizations and occupancy snapshots and can be
// combined with NewMultiSink.
package metrics
