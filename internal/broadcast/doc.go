// Package broadcast implements the admin fan-out engine: stage a message,
// confirm it, and deliver it sequentially to every registered recipient with
// a fixed inter-message delay, live progress edits, cooperative per-initiator
// cancellation, and an append-only history record per run.
//
// Delivery is strictly best effort. There is no retry, no ordering guarantee
// across recipients beyond snapshot enumeration order, and no exactly-once
// semantics; a failed recipient is counted and the run moves on.
package broadcast
