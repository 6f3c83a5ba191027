// Package outcome models the result of a fallible operation as an ordinary
// immutable value: a success carrying a value, or a failure carrying an
// optional diagnostic. Chains of fallible steps compose through combinators
// instead of nested error handling; no combinator raises, and a panic can
// only enter the model through a designated absorption point and only leave
// it through a deliberate re-raise call.
//
// Construction:
//   - Ok / Done: success, with or without a payload
//   - Fail / FailValue: failure, optionally diagnostic-less ("unknown
//     failure") or retaining a last-known value
//   - Get / Do: absorb a fallible function, converting a returned error or a
//     panic into the failure's diagnostic
//
// Consumption:
//   - Value / Unwrap / ValueOr: read the value (Unwrap surfaces ErrUnknown
//     for diagnostic-less failures)
//   - WhenFailed / WithDefaultErr: observe or default the diagnostic
//   - Throw / Must: deliberately re-raise at the caller's discretion
//
// A failure need not carry a diagnostic: test IsSuccess, never diagnostic
// presence, when checking for failure. Diagnostics are opaque shared
// references; aggregation (AggregateError) wraps them in order without
// copying, mutating or flattening.
//
// Derived combinators live in the subpackages: solo (pure synchronous),
// future (asynchronous bridging), many (collection aggregation) and chain
// (fluent composition).
package outcome
