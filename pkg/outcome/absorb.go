package outcome

import "fmt"

// Get invokes fn and absorbs its raised control flow: a returned error or a
// panic becomes the failure's diagnostic, a returned value becomes a
// success. It is the single point where raised exceptions enter the model
// from synchronous code; Get itself never raises.
func Get[T any](fn func() (T, error)) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Fail[T](recovered(r))
		}
	}()
	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// Do is the value-less form of Get.
func Do(fn func() error) Outcome[Unit] {
	return Get(func() (Unit, error) {
		return Unit{}, fn()
	})
}

// recovered boxes a recovered panic value into an error diagnostic,
// preserving error values for errors.Is/As through the wrap.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic: %w", err)
	}
	return fmt.Errorf("recovered panic: %v", r)
}
