package future

import (
	"context"
	"errors"

	"github.com/MrColteR/outcome/pkg/outcome"
)

// ErrUnresolved is the diagnostic observed when awaiting a future that can
// no longer settle: a producer that closed the channel without sending, a
// second await of a one-shot future, or a nil future.
var ErrUnresolved = errors.New("future settled no outcome")

// Future is a one-shot receive of an outcome: the producing side sends
// exactly one outcome and closes the channel. Any receive-only channel of
// outcomes converts to it, so completions produced elsewhere plug straight
// into the combinators below.
type Future[T any] <-chan outcome.Outcome[T]

// Resolved wraps an already-computed outcome as an already-resolved future.
// The conversion is purely representational; no goroutine is scheduled.
func Resolved[T any](o outcome.Outcome[T]) Future[T] {
	ch := make(chan outcome.Outcome[T], 1)
	ch <- o
	close(ch)
	return ch
}

// Go launches fn on a new goroutine, absorbing a returned error or a panic
// into the failure's diagnostic. ctx is handed to fn untouched: the library
// neither watches nor cancels it, so cancellation implemented by fn
// surfaces as an ordinary captured diagnostic.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) Future[T] {
	return Try(ctx, fn)
}

// Try launches fn like Go, with an optional diagnostic-translation step
// applied to the captured error before wrapping.
func Try[T any](ctx context.Context, fn func(context.Context) (T, error), mapErr ...func(error) error) Future[T] {
	ch := make(chan outcome.Outcome[T], 1)
	go func() {
		defer close(ch)
		res := outcome.Get(func() (T, error) {
			return fn(ctx)
		})
		if res.IsFailure() && len(mapErr) > 0 && mapErr[0] != nil {
			res = outcome.Fail[T](mapErr[0](res.Err()))
		}
		ch <- res
	}()
	return ch
}

// Await blocks until f settles and returns its outcome; it never re-raises.
// A future that cannot settle anymore yields Fail(ErrUnresolved).
func (f Future[T]) Await() outcome.Outcome[T] {
	if f == nil {
		return outcome.Fail[T](ErrUnresolved)
	}
	o, ok := <-f
	if !ok {
		return outcome.Fail[T](ErrUnresolved)
	}
	return o
}

// Map transforms the successful value through fn; a failed input settles
// the returned future without invoking fn. A panic inside fn is absorbed
// into the settled failure, since fn runs on a goroutine the caller cannot
// recover over.
func Map[In, Out any](ctx context.Context, f Future[In], fn func(context.Context, In) Out) Future[Out] {
	ch := make(chan outcome.Outcome[Out], 1)
	go func() {
		defer close(ch)
		in := f.Await()
		if in.IsFailure() {
			ch <- outcome.FailFrom[In, Out](in)
			return
		}
		ch <- outcome.Get(func() (Out, error) {
			return fn(ctx, in.Value()), nil
		})
	}()
	return ch
}

// OnSuccess runs action iff the awaited outcome is successful and settles
// with the original outcome. A panic inside action is absorbed into a
// settled failure.
func OnSuccess[T any](ctx context.Context, f Future[T], action func(context.Context, T)) Future[T] {
	ch := make(chan outcome.Outcome[T], 1)
	go func() {
		defer close(ch)
		in := f.Await()
		if in.IsFailure() {
			ch <- in
			return
		}
		probe := outcome.Do(func() error {
			action(ctx, in.Value())
			return nil
		})
		if probe.IsFailure() {
			ch <- outcome.Fail[T](probe.Err())
			return
		}
		ch <- in
	}()
	return ch
}

// Bind awaits f and, on success, passes control and diagnostic ownership
// entirely to the future returned by fn; on failure it short-circuits,
// propagating the original diagnostic without invoking fn.
func Bind[In, Out any](ctx context.Context, f Future[In], fn func(context.Context, In) Future[Out]) Future[Out] {
	ch := make(chan outcome.Outcome[Out], 1)
	go func() {
		defer close(ch)
		in := f.Await()
		if in.IsFailure() {
			ch <- outcome.FailFrom[In, Out](in)
			return
		}
		launched := outcome.Get(func() (Future[Out], error) {
			return fn(ctx, in.Value()), nil
		})
		if launched.IsFailure() {
			ch <- outcome.Fail[Out](launched.Err())
			return
		}
		ch <- launched.Value().Await()
	}()
	return ch
}

// Then sequences two same-typed asynchronous steps: pipeline sugar over
// Bind with a fixed value type across both steps.
func Then[T any](ctx context.Context, f Future[T], fn func(context.Context, T) Future[T]) Future[T] {
	return Bind[T, T](ctx, f, fn)
}
