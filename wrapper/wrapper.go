package wrapper

// Wrapper decorates a target callable, returning a replacement with the
// same call shape and added behavior.
type Wrapper[F any] func(target Callable[F]) Callable[F]

// Decorate calls w(target).
func (w Wrapper[F]) Decorate(target Callable[F]) Callable[F] {
	return w(target)
}

// Definition is the two-parameter form a wrapper is authored in. It receives
// the normalized wrapper being built and the target to wrap, and returns the
// replacement callable. Its second parameter is the target or the next
// wrapper's output in a chain.
type Definition[F any] func(self Wrapper[F], target Callable[F]) Callable[F]

// Normalize turns a Definition into a directly appliable Wrapper.
// The returned wrapper w satisfies w(target) == def(w, target), and the
// result keeps the target's name and documentation.
func Normalize[F any](def Definition[F]) Wrapper[F] {
	var self Wrapper[F]
	self = func(target Callable[F]) Callable[F] {
		out := def(self, target)
		out.Name = target.Name
		out.Doc = target.Doc
		return out
	}
	return self
}

// Identity returns the wrapper that returns its target unchanged.
func Identity[F any]() Wrapper[F] {
	return func(target Callable[F]) Callable[F] {
		return target
	}
}
