// Package snapshot persists and restores point-in-time book state, and
// provides the epoch readers that make live snapshots safe against order
// recycling. Snapshots bound WAL replay time: after a snapshot at seq S,
// entry segments up to S are truncated.
package snapshot
