// Package chain provides a fluent wrapper over outcome and solo for
// linear pipelines that keep a single value type, plus package-level
// functions for the type-changing steps Go methods cannot express.
//
//   - Start / From open a chain from an outcome or a raw value
//   - Then / Try / Map compose steps; failures skip the step
//   - OnSuccess / OnFailure observe without changing the outcome
//   - When / Validate / WhenFailed guard and recover
//   - package-level Then / Try / Map / Match change the value type
//
// The carried context is passed to every supplied function; the chain
// itself never selects on it.
package chain
