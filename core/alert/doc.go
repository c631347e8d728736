// Package alert re-evaluates the time-policy predicates on a fixed interval
// and publishes the derived alert state. The monitor never mutates dock,
// waiting or history data; it only reads snapshots. It is independent of any
// external refresh task, which has a different failure domain (local clock
// versus external fetch).
package alert
