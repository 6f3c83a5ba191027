package outcome

import "reflect"

// IsNil reports whether v is nil in the broad sense: a nil interface or a
// nil pointer, map, slice, channel or function boxed inside one. Non
// reference-like values are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
