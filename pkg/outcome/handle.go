package outcome

// ValueOr returns the held value when it is defined and non-nil, fallback
// otherwise. It applies regardless of success or failure: a successful
// outcome can itself hold a nil value.
func (o Outcome[T]) ValueOr(fallback T) T {
	if !o.hasValue || IsNil(o.value) {
		return fallback
	}
	return o.value
}

// WithDefaultErr attaches fallback as the diagnostic of a failure that has
// none; in every other case the outcome is returned unchanged. An existing
// diagnostic is never overwritten.
func (o Outcome[T]) WithDefaultErr(fallback error) Outcome[T] {
	if o.success || o.err != nil {
		return o
	}
	return Fail[T](fallback)
}

// WhenFailed runs handler iff a diagnostic is present; a failure without a
// diagnostic skips the handler and passes through unchanged. When the
// handler itself fails, by returning a non-nil error or by panicking, the
// result is a failure whose diagnostic aggregates the original and the
// handler's error, in that order; the original cause is never dropped.
func (o Outcome[T]) WhenFailed(handler func(error) error) Outcome[T] {
	if o.err == nil {
		return o
	}
	herr := func() (herr error) {
		defer func() {
			if r := recover(); r != nil {
				herr = recovered(r)
			}
		}()
		return handler(o.err)
	}()
	if herr == nil {
		return o
	}
	return Fail[T](Aggregate(o.err, herr))
}

// Throw panics with the diagnostic iff one is present; failures without a
// diagnostic do not throw. Together with Must it is the only deliberate
// re-raise point in the model, exercised solely at caller discretion.
func (o Outcome[T]) Throw() {
	if o.err != nil {
		panic(o.err)
	}
}

// Must returns the value of a successful outcome and panics on failure,
// with the diagnostic when present and ErrUnknown otherwise.
func (o Outcome[T]) Must() T {
	if o.success {
		return o.value
	}
	if o.err != nil {
		panic(o.err)
	}
	panic(ErrUnknown)
}
