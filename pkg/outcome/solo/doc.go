// Package solo provides pure synchronous combinators over a single outcome.
//
// All operations are non-suspending and non-raising; failures propagate
// untouched and supplied functions run only on the branch they belong to.
//
// Key operations:
// - Map: transform the successful value
// - Match: collapse to a plain value via exactly one branch
// - OnSuccess/OnFailure: side effects without changing the outcome
// - Validate: collect violation messages into one aggregate diagnostic
// - When: fail a success whose value a predicate rejects
// - NotNull: fail a success holding an undefined or nil value
//
// For asynchronous counterparts see package future; for folding many
// outcomes into one see package many.
package solo
