package outcome

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnknown stands in for the diagnostic of a failure that carries none.
// It is used only when an outcome is unwrapped into plain Go error handling
// (Unwrap, Must), where a nil error would misreport success; inside the
// model a failure without a diagnostic stays diagnostic-less.
var ErrUnknown = errors.New("unknown failure")

// Unit is the payload of an outcome that carries no value.
type Unit struct{}

// Outcome is the immutable result of a fallible operation: success carrying
// a value, or failure carrying an optional diagnostic. The zero value is an
// unknown failure; outcomes are built through the package factories and
// derived through combinators, never mutated.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	success   bool
	hasValue  bool
}

// Ok returns a successful outcome holding v.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		success:   true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Done returns a successful value-less outcome.
func Done() Outcome[Unit] {
	return Ok(Unit{})
}

// Fail returns a failed outcome. A nil err is legitimate and marks an
// unknown failure: callers checking for failure must test IsSuccess, never
// diagnostic presence.
func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		success:   false,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailValue returns a failed outcome retaining a last-known value. The value
// is kept for diagnostic purposes only; it must not be treated as valid.
func FailValue[T any](v T, err error) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       err,
		success:   false,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom propagates a failure across a value-type change. The diagnostic
// and the provenance stamp of the originating outcome are preserved; any
// retained value cannot cross the type change and is dropped.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		success:   false,
		hasValue:  false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the held value. It is meaningful only when IsSuccess reports
// true; on failure it yields the retained value, if any, or the zero value,
// and must not be relied upon.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the diagnostic, which may be nil even on failure.
func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.success
}

func (o Outcome[T]) IsFailure() bool {
	return !o.success
}

// HasValue reports whether a value was ever set, by Ok or FailValue.
func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

// Unwrap converts the outcome into Go's value-and-error convention, the
// sanctioned coercion point out of the model. A failure always surfaces a
// non-nil error: a missing diagnostic is replaced by ErrUnknown.
func (o Outcome[T]) Unwrap() (T, error) {
	if o.success {
		return o.value, nil
	}
	if o.err != nil {
		return o.value, o.err
	}
	return o.value, ErrUnknown
}

// ID identifies this particular outcome instance.
func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

// CreatedAt is the construction time (UTC).
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}
