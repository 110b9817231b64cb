package wrapper

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Pipe combines wrappers into one, applying them to the target from left to
// right: Pipe(w1, w2)(target) == w2(w1(target)). Pipe() is the identity
// wrapper. Elements are not validated; a malformed wrapper surfaces only
// when the combined wrapper is applied.
func Pipe[F any](wrappers ...Wrapper[F]) Wrapper[F] {
	return Normalize(func(_ Wrapper[F], target Callable[F]) Callable[F] {
		out := target
		for _, w := range wrappers {
			out = w(out)
		}
		return out
	})
}

// Compose combines wrappers into one, applying them to the target from right
// to left. It is the exact mirror of Pipe.
func Compose[F any](wrappers ...Wrapper[F]) Wrapper[F] {
	return Pipe(lo.Reverse(slices.Clone(wrappers))...)
}
