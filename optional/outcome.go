package optional

import "github.com/go-leo/wrapx/wrapper"

// Outcome is what a dispatch produces: either a wrapper still awaiting a
// target, or a target that has already been wrapped. Exactly one of the two
// is set.
type Outcome[F any] struct {
	wrapper wrapper.Wrapper[F]
	result  wrapper.Callable[F]
	applied bool
}

func pending[F any](w wrapper.Wrapper[F]) Outcome[F] {
	return Outcome[F]{wrapper: w}
}

func applied[F any](c wrapper.Callable[F]) Outcome[F] {
	return Outcome[F]{result: c, applied: true}
}

// Pending returns the wrapper awaiting a target, if no target was dispatched.
func (o Outcome[F]) Pending() (wrapper.Wrapper[F], bool) {
	if o.applied {
		return nil, false
	}
	return o.wrapper, true
}

// Result returns the wrapped target, if one was dispatched.
func (o Outcome[F]) Result() (wrapper.Callable[F], bool) {
	return o.result, o.applied
}
