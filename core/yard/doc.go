// Package yard implements the dock allocation and waiting-queue
// reconciliation engine. The Engine owns the fixed table of dock slots, a
// queue of displaced trucks and the append-only finalization history. All
// mutations go through Engine methods; callers never touch dock or entry
// fields directly, which preserves the occupancy / pre-assignment mutual
// exclusion invariant.
package yard
