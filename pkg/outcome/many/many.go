package many

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MrColteR/outcome/pkg/outcome"
	"github.com/MrColteR/outcome/pkg/outcome/future"
)

// Combine folds an ordered list of outcomes into one. If any member failed,
// the result is a single aggregate failure wrapping every failed member's
// diagnostic in original order, duplicates and absent diagnostics preserved
// positionally. If none failed, the result is a success holding the values
// in input order, one per member.
func Combine[T any](outs []outcome.Outcome[T]) outcome.Outcome[[]T] {
	values := make([]T, 0, len(outs))
	var failed []error
	for _, o := range outs {
		if o.IsFailure() {
			failed = append(failed, o.Err())
			continue
		}
		values = append(values, o.Value())
	}
	if len(failed) > 0 {
		return outcome.Fail[[]T](outcome.Aggregate(failed...))
	}
	return outcome.Ok(values)
}

// Partition never fails: it decomposes the input into the successful values
// and the diagnostics of the failed members (nil placeholders included),
// each in input order. The two sequences are independent, not paired by
// index.
func Partition[T any](outs []outcome.Outcome[T]) (values []T, errs []error) {
	for _, o := range outs {
		if o.IsFailure() {
			errs = append(errs, o.Err())
			continue
		}
		values = append(values, o.Value())
	}
	return values, errs
}

// Collect eagerly drains a channel of outcomes into a concrete ordered
// slice, in arrival order, returning when the channel closes.
func Collect[T any](ch <-chan outcome.Outcome[T]) []outcome.Outcome[T] {
	outs := make([]outcome.Outcome[T], 0)
	for o := range ch {
		outs = append(outs, o)
	}
	return outs
}

type config struct {
	limit int
}

// Option configures Traverse.
type Option func(*config)

// WithLimit bounds the number of element operations in flight. n <= 0 means
// unbounded, the default.
func WithLimit(n int) Option {
	return func(c *config) {
		c.limit = n
	}
}

// Traverse applies fn to every input and folds the collected outcomes
// through Combine. By default every invocation is launched before any is
// awaited, with no bound on in-flight work and no backpressure; WithLimit
// caps in-flight work while keeping the launch order. Each invocation is
// absorbed like Get, and a failing element never cancels or affects its
// siblings: when any element fails the overall result is the aggregate
// failure of the failing elements, and values produced by elements that
// individually succeeded are discarded.
func Traverse[In, Out any](ctx context.Context, inputs []In, fn func(context.Context, In) (Out, error), opts ...Option) future.Future[[]Out] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	ch := make(chan outcome.Outcome[[]Out], 1)
	go func() {
		defer close(ch)

		results := make([]outcome.Outcome[Out], len(inputs))
		var g errgroup.Group
		if cfg.limit > 0 {
			g.SetLimit(cfg.limit)
		}
		for i, in := range inputs {
			g.Go(func() error {
				// Each goroutine owns a unique index, so no mutex is needed;
				// workers never report errors to the group.
				results[i] = outcome.Get(func() (Out, error) {
					return fn(ctx, in)
				})
				return nil
			})
		}
		_ = g.Wait()

		ch <- Combine(results)
	}()
	return ch
}
