package optional

import "github.com/go-leo/wrapx/wrapper"

// Factory builds a wrapper from named configuration options. O is the
// caller's option type; since every option can be omitted, the factory is
// always callable with no configuration at all.
type Factory[F any, O any] func(opts ...O) wrapper.Wrapper[F]

// NoArgs adapts a Factory so it can be used bare on a target or as a
// configuring call. A present dispatch argument is always the target here:
// the adapted factory takes no positional configuration, so the call shape
// alone disambiguates.
type NoArgs[F any, O any] struct {
	factory Factory[F, O]
}

// NoArgsAdapter adapts factory for bare-or-configuring usage.
func NoArgsAdapter[F any, O any](factory func(opts ...O) wrapper.Wrapper[F]) *NoArgs[F, O] {
	return &NoArgs[F, O]{factory: factory}
}

// Decorate is the bare shape: it wraps target with a default-configured
// wrapper. Decorate(target) is observably identical to Configure()(target).
func (a *NoArgs[F, O]) Decorate(target wrapper.Callable[F]) wrapper.Callable[F] {
	return a.factory()(target)
}

// Configure is the configuring shape: it builds the wrapper from opts and
// leaves it awaiting a target.
func (a *NoArgs[F, O]) Configure(opts ...O) wrapper.Wrapper[F] {
	return a.factory(opts...)
}

// Dispatch unifies both shapes behind one router. An absent arg yields the
// pending wrapper built from opts; a present arg is the target and is wrapped
// immediately. Errors raised by the factory or the target pass through
// untranslated.
func (a *NoArgs[F, O]) Dispatch(arg Arg, opts ...O) (Outcome[F], error) {
	v, ok := arg.Get()
	if !ok {
		return pending(a.Configure(opts...)), nil
	}
	target, err := asTarget[F](v)
	if err != nil {
		return Outcome[F]{}, err
	}
	return applied(a.Configure(opts...)(target)), nil
}
