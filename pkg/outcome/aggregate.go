package outcome

import "strings"

// AggregateError is an ordered collection of underlying diagnostics. Entries
// may be nil: a failure without a diagnostic keeps its position in the
// sequence. Nested aggregates are preserved as children, never flattened, so
// no individual cause is ever lost.
type AggregateError struct {
	errs []error
}

// Aggregate wraps diagnostics, in the given order, into one AggregateError.
func Aggregate(errs ...error) *AggregateError {
	return &AggregateError{errs: append([]error(nil), errs...)}
}

// Error renders a readable summary, one clause per cause, with a placeholder
// for absent diagnostics.
func (e *AggregateError) Error() string {
	if len(e.errs) == 0 {
		return "no failures"
	}
	parts := make([]string, len(e.errs))
	for i, err := range e.errs {
		if err == nil {
			parts[i] = "unknown failure"
			continue
		}
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the wrapped diagnostics to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.errs
}

// Causes unwraps err into its underlying diagnostics: the wrapped sequence
// for an aggregate (or anything else implementing Unwrap() []error), a
// single-element sequence otherwise. A nil err has no causes. The returned
// slice is the caller's to keep; mutating it never reaches the aggregate.
func Causes(err error) []error {
	if IsNil(err) {
		return nil
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return append([]error(nil), u.Unwrap()...)
	}
	return []error{err}
}
