// Package state owns the in-memory snapshot of the remote studio and keeps
// it converged with the remote through two channels: pushed events for
// low-latency targeted merges, and a fixed-cadence poll for bulk refresh of
// screenshot, stats, and output activity.
//
// Both channels write last-writer-wins into the same snapshot. Polls are
// idempotent bulk reads and events are targeted field updates, so no version
// reconciliation is needed; both sources converge to the same remote truth.
// The reconciler is the snapshot's only writer.
package state
