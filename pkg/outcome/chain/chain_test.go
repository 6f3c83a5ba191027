package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/MrColteR/outcome/pkg/outcome"
)

func TestStartAndOutcome_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, outcome.Ok(5)).Outcome()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, 7).Outcome()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	out := Start(ctx, outcome.Fail[int](boom)).
		Then(func(ctx context.Context, n int) outcome.Outcome[int] {
			called = true
			return outcome.Ok(n + 1)
		}).
		Outcome()

	if called {
		t.Fatalf("step must not run when the chain is already failed")
	}
	if out.IsSuccess() || out.Err() != boom {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThen_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, 3).
		Then(func(ctx context.Context, n int) outcome.Outcome[int] { return outcome.Ok(n * 2) }).
		Outcome()
	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, 10).
		Try(func(ctx context.Context, n int) (int, error) { return 0, errors.New("try-error") }).
		Outcome()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestTry_AbsorbsPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, 10).
		Try(func(ctx context.Context, n int) (int, error) { panic("step blew up") }).
		Outcome()
	if out.IsSuccess() || out.Err() == nil {
		t.Fatalf("expected the panic absorbed into a failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, 4).
		Try(func(ctx context.Context, n int) (int, error) { return n * n, nil }).
		Outcome()
	if !out.IsSuccess() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, 5).
		Map(func(ctx context.Context, n int) int { return n + 3 }).
		Outcome()
	if !out.IsSuccess() || out.Value() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestSideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// success path
	sCalled := false
	fCalled := false
	out1 := From(ctx, 11).
		OnSuccess(func(ctx context.Context, n int) { sCalled = true }).
		OnFailure(func(ctx context.Context, err error) { fCalled = true }).
		Outcome()
	if !out1.IsSuccess() || out1.Value() != 11 {
		t.Fatalf("expected success with 11, got: %v, %v", out1.IsSuccess(), out1.Err())
	}
	if !sCalled || fCalled {
		t.Fatalf("expected success side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}

	// failure path
	sCalled = false
	fCalled = false
	out2 := Start(ctx, outcome.Fail[int](errors.New("bad"))).
		OnSuccess(func(ctx context.Context, n int) { sCalled = true }).
		OnFailure(func(ctx context.Context, err error) { fCalled = true }).
		Outcome()
	if out2.IsSuccess() || out2.Err() == nil || out2.Err().Error() != "bad" {
		t.Fatalf("expected failure 'bad', got: success=%v, err=%v", out2.IsSuccess(), out2.Err())
	}
	if sCalled || !fCalled {
		t.Fatalf("expected failure side-effect only; sCalled=%v, fCalled=%v", sCalled, fCalled)
	}
}

func TestWhen_RejectsValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, -2).
		When(func(ctx context.Context, n int) bool { return n > 0 },
			func(n int) error { return errors.New("not positive") }).
		Outcome()
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "not positive" {
		t.Fatalf("expected failure 'not positive', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestValidate_AggregatesViolations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := From(ctx, "").
		Validate(func(ctx context.Context, s string) []string {
			var msgs []string
			if s == "" {
				msgs = append(msgs, "empty")
			}
			return msgs
		}, func(msg string) error { return errors.New(msg) }).
		Outcome()
	if out.IsSuccess() {
		t.Fatalf("expected validation failure")
	}
	if causes := outcome.Causes(out.Err()); len(causes) != 1 || causes[0].Error() != "empty" {
		t.Fatalf("expected aggregated violation, got: %v", causes)
	}
}

func TestWhenFailed_RunsOnDiagnosticOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	out := Start(ctx, outcome.Fail[int](errors.New("boom"))).
		WhenFailed(func(ctx context.Context, err error) error {
			calls++
			return nil
		}).
		Outcome()
	if calls != 1 || out.IsSuccess() {
		t.Fatalf("expected one recovery attempt on a diagnosed failure, got: calls=%d", calls)
	}

	Start(ctx, outcome.Fail[int](nil)).
		WhenFailed(func(ctx context.Context, err error) error {
			calls++
			return nil
		})
	if calls != 1 {
		t.Fatalf("handler must not run for a diagnostic-less failure")
	}
}

func TestTypeChangingSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Map to a new type
	c := Map(From(ctx, 42), func(ctx context.Context, n int) string { return strconv.Itoa(n) })
	if out := c.Outcome(); !out.IsSuccess() || out.Value() != "42" {
		t.Fatalf("expected success with \"42\", got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}

	// Then to a new type
	c2 := Then(From(ctx, 6), func(ctx context.Context, n int) outcome.Outcome[string] {
		return outcome.Ok(strconv.Itoa(n * 7))
	})
	if out := c2.Outcome(); !out.IsSuccess() || out.Value() != "42" {
		t.Fatalf("expected success with \"42\", got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}

	// Try to a new type, error path
	c3 := Try(From(ctx, 1), func(ctx context.Context, n int) (string, error) {
		return "", errors.New("no conversion")
	})
	if out := c3.Outcome(); out.IsSuccess() || out.Err() == nil || out.Err().Error() != "no conversion" {
		t.Fatalf("expected failure 'no conversion', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}

	// a failed chain crosses the type change with its diagnostic
	boom := errors.New("boom")
	c4 := Map(Start(ctx, outcome.Fail[int](boom)), func(ctx context.Context, n int) string { return "" })
	if out := c4.Outcome(); out.IsSuccess() || out.Err() != boom {
		t.Fatalf("expected failure 'boom' across the type change, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestMatch_CollapsesChain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Match(From(ctx, 2),
		func(ctx context.Context, n int) string { return strconv.Itoa(n * 21) },
		func(ctx context.Context, err error) string { return "failed" })
	if got != "42" {
		t.Fatalf("expected success branch, got %q", got)
	}

	got = Match(Start(ctx, outcome.Fail[int](nil)),
		func(ctx context.Context, n int) string { return "ok" },
		func(ctx context.Context, err error) string {
			if err == nil {
				return "unknown"
			}
			return err.Error()
		})
	if got != "unknown" {
		t.Fatalf("expected the failure branch with a nil diagnostic, got %q", got)
	}
}
