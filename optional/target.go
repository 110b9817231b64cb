package optional

import (
	"reflect"
	"runtime"

	"github.com/go-leo/wrapx/wrapper"
)

// asTarget converts a dispatch value into the adapted callable type. Bare
// function values get a Callable carrying the runtime function name, the
// closest Go analogue to a callable's intrinsic name.
func asTarget[F any](v any) (wrapper.Callable[F], error) {
	if target, ok := v.(wrapper.Callable[F]); ok {
		return target, nil
	}
	if fn, ok := v.(F); ok {
		return wrapper.Callable[F]{Name: funcName(fn), Fn: fn}, nil
	}
	return wrapper.Callable[F]{}, ErrNotCallable
}

func funcName(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	if f := runtime.FuncForPC(rv.Pointer()); f != nil {
		return f.Name()
	}
	return ""
}
