// Package many turns collections of outcomes into one aggregate outcome or
// into parallel decompositions.
//
// Key operations:
// - Combine: one aggregate failure wrapping every failed member's
//   diagnostic, or one success holding every value, order preserved
// - Partition: successful values and failed diagnostics as two independent
//   ordered sequences; never fails
// - Traverse: apply an asynchronous fallible function to every input,
//   fire-all join-all, and fold the outcomes through Combine (WithLimit
//   bounds in-flight work)
// - Collect: eagerly drain a channel of outcomes into an ordered slice
package many
