package chain

import (
	"context"

	"github.com/MrColteR/outcome/pkg/outcome"
	"github.com/MrColteR/outcome/pkg/outcome/solo"
)

// Chain carries a context alongside an outcome to enable fluent
// composition. The context is handed to the supplied functions only; the
// chain itself never watches it.
type Chain[T any] struct {
	ctx context.Context
	out outcome.Outcome[T]
}

// Start begins a chain from an existing outcome.
func Start[T any](ctx context.Context, o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, out: o}
}

// From begins a chain from a successful value.
func From[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Ok(v))
}

// Outcome returns the underlying outcome.
func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.out
}

// Then composes a function that already returns an outcome.
func (c Chain[T]) Then(fn func(context.Context, T) outcome.Outcome[T]) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: fn(c.ctx, c.out.Value())}
}

// Try composes a plain fallible function, absorbing its error and panic
// like outcome.Get.
func (c Chain[T]) Try(fn func(context.Context, T) (T, error)) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, out: outcome.Get(func() (T, error) {
		return fn(c.ctx, c.out.Value())
	})}
}

// Map transforms the successful value.
func (c Chain[T]) Map(fn func(context.Context, T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: solo.Map(c.out, func(v T) T {
		return fn(c.ctx, v)
	})}
}

// OnSuccess triggers a side effect on success without changing the outcome.
func (c Chain[T]) OnSuccess(action func(context.Context, T)) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: solo.OnSuccess(c.out, func(v T) {
		action(c.ctx, v)
	})}
}

// OnFailure triggers a side effect on failure; the diagnostic may be nil.
func (c Chain[T]) OnFailure(action func(context.Context, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: solo.OnFailure(c.out, func(err error) {
		action(c.ctx, err)
	})}
}

// When fails a successful chain whose value the predicate rejects.
func (c Chain[T]) When(pred func(context.Context, T) bool, factory func(T) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: solo.When(c.out, func(v T) bool {
		return pred(c.ctx, v)
	}, factory)}
}

// Validate folds violation messages into one aggregate diagnostic.
func (c Chain[T]) Validate(validator func(context.Context, T) []string, factory func(string) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: solo.Validate(c.out, func(v T) []string {
		return validator(c.ctx, v)
	}, factory)}
}

// WhenFailed runs handler iff a diagnostic is present, aggregating the
// handler's own failure with the original cause.
func (c Chain[T]) WhenFailed(handler func(context.Context, error) error) Chain[T] {
	return Chain[T]{ctx: c.ctx, out: c.out.WhenFailed(func(err error) error {
		return handler(c.ctx, err)
	})}
}

// Then switches the chain to a new value type via a function that already
// returns an outcome.
func Then[T, U any](c Chain[T], fn func(context.Context, T) outcome.Outcome[U]) Chain[U] {
	if c.out.IsFailure() {
		return Chain[U]{ctx: c.ctx, out: outcome.FailFrom[T, U](c.out)}
	}
	return Chain[U]{ctx: c.ctx, out: fn(c.ctx, c.out.Value())}
}

// Try switches the chain to a new value type via a plain fallible function.
func Try[T, U any](c Chain[T], fn func(context.Context, T) (U, error)) Chain[U] {
	if c.out.IsFailure() {
		return Chain[U]{ctx: c.ctx, out: outcome.FailFrom[T, U](c.out)}
	}
	return Chain[U]{ctx: c.ctx, out: outcome.Get(func() (U, error) {
		return fn(c.ctx, c.out.Value())
	})}
}

// Map transforms the chained value to a new type.
func Map[T, U any](c Chain[T], fn func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, out: solo.Map(c.out, func(v T) U {
		return fn(c.ctx, v)
	})}
}

// Match collapses the chain to a final value via exactly one branch; the
// failure branch must tolerate a nil diagnostic.
func Match[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Match(c.out, func(v T) U {
		return onSuccess(c.ctx, v)
	}, func(err error) U {
		return onFailure(c.ctx, err)
	})
}
