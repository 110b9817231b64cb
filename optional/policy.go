package optional

import "reflect"

// TargetPolicy decides whether a single dispatch value is the target callable
// or a leading configuration value. The distinction is inherently ambiguous:
// a configuration value that happens to be invokable is routed as the target.
// Callers whose configuration carries function values should supply their own
// policy via Policy.
type TargetPolicy func(v any) bool

type describable interface {
	Describe() (string, string)
}

// Invokable is the default TargetPolicy. It reports true for any
// wrapper.Callable and for non-nil values of func kind.
func Invokable(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(describable); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}
