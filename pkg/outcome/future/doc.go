// Package future bridges goroutine-based asynchrony and outcomes. A
// Future[T] is a one-shot receive-only channel settled with exactly one
// outcome; the combinators here adapt between that representation and the
// synchronous model without ever re-raising.
//
// Key operations:
// - Go/Try: launch a fallible function, absorbing error and panic (Try adds
//   an optional diagnostic translation)
// - Resolved: wrap a completed outcome without scheduling anything
// - Await: block until settled and return the outcome; never re-raises
// - Map/OnSuccess: success-path continuations with the synchronous
//   branching contracts
// - Bind/Then: asynchronous sequencing; failures short-circuit
//
// Suspension happens only at the await points; the failure path schedules no
// continuation work. The package spawns goroutines to run continuations but
// never cancels them and holds no locks: cancellation and timeouts belong to
// the supplied functions, whose errors surface as captured diagnostics.
package future
