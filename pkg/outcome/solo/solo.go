package solo

import (
	"github.com/MrColteR/outcome/pkg/outcome"
)

func Map[In, Out any](o outcome.Outcome[In], fn func(In) Out) outcome.Outcome[Out] {
	if o.IsSuccess() {
		return outcome.Ok(fn(o.Value()))
	}
	return outcome.FailFrom[In, Out](o)
}

// Match dispatches exactly one branch. The failure branch receives the
// diagnostic even when it is absent, so onFailure must tolerate nil.
func Match[In, Out any](o outcome.Outcome[In], onSuccess func(In) Out, onFailure func(error) Out) Out {
	if o.IsSuccess() {
		return onSuccess(o.Value())
	}
	return onFailure(o.Err())
}

func OnSuccess[T any](o outcome.Outcome[T], action func(T)) outcome.Outcome[T] {
	if o.IsSuccess() {
		action(o.Value())
	}
	return o
}

// OnFailure runs action whenever the outcome is failed, passing the
// diagnostic, which may be nil.
func OnFailure[T any](o outcome.Outcome[T], action func(error)) outcome.Outcome[T] {
	if o.IsFailure() {
		action(o.Err())
	}
	return o
}

// Validate applies only to a successful outcome. Violation messages are
// mapped through factory and combined into one aggregate diagnostic; with
// no violations the outcome passes through unchanged.
func Validate[T any](o outcome.Outcome[T], validator func(T) []string, factory func(string) error) outcome.Outcome[T] {
	if o.IsFailure() {
		return o
	}
	violations := validator(o.Value())
	if len(violations) == 0 {
		return o
	}
	errs := make([]error, len(violations))
	for i, msg := range violations {
		errs[i] = factory(msg)
	}
	return outcome.Fail[T](outcome.Aggregate(errs...))
}

// When fails a successful outcome whose value the predicate rejects.
func When[T any](o outcome.Outcome[T], pred func(T) bool, factory func(T) error) outcome.Outcome[T] {
	if o.IsFailure() || pred(o.Value()) {
		return o
	}
	return outcome.Fail[T](factory(o.Value()))
}

// NotNull fails a successful outcome holding an undefined or nil value.
// Only meaningful for reference-like value types.
func NotNull[T any](o outcome.Outcome[T], factory func() error) outcome.Outcome[T] {
	if o.IsFailure() {
		return o
	}
	if !o.HasValue() || outcome.IsNil(o.Value()) {
		return outcome.Fail[T](factory())
	}
	return o
}
