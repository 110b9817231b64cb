package optional

import (
	"github.com/go-leo/gox/slicex"

	"github.com/go-leo/wrapx/wrapper"
)

// VarFactory builds a wrapper from positional configuration values. A factory
// with a required leading value reports its absence itself; the adapter never
// validates configuration.
type VarFactory[F any] func(args ...any) (wrapper.Wrapper[F], error)

// WithArgs adapts a VarFactory so it can be used bare on a target, as a
// configuring call, or with a leading positional configuration value. Unlike
// NoArgs, a present dispatch argument is ambiguous, and the adapter's
// TargetPolicy decides whether it is the target or configuration.
type WithArgs[F any] struct {
	factory VarFactory[F]
	policy  TargetPolicy
}

// WithArgsAdapter adapts factory for bare-or-configuring usage with
// positional configuration.
func WithArgsAdapter[F any](factory func(args ...any) (wrapper.Wrapper[F], error), opts ...Option) *WithArgs[F] {
	return &WithArgs[F]{factory: factory, policy: newOption(opts...).Policy}
}

// Configure builds the wrapper from args and leaves it awaiting a target.
func (a *WithArgs[F]) Configure(args ...any) (wrapper.Wrapper[F], error) {
	return a.factory(args...)
}

// Decorate wraps target with a wrapper built from args.
func (a *WithArgs[F]) Decorate(target wrapper.Callable[F], args ...any) (wrapper.Callable[F], error) {
	w, err := a.factory(args...)
	if err != nil {
		return wrapper.Callable[F]{}, err
	}
	return w(target), nil
}

// Dispatch routes a single ambiguous argument:
//
//  1. absent: build the wrapper from args and return it pending;
//  2. present and accepted by the policy: it is the target, wrap it with a
//     wrapper built from args;
//  3. present otherwise: it is the leading configuration value, prepend it to
//     args and return the wrapper pending.
//
// A configuration value that happens to satisfy the policy is routed by
// branch 2; that resolution order is part of the contract.
func (a *WithArgs[F]) Dispatch(arg Arg, args ...any) (Outcome[F], error) {
	v, ok := arg.Get()
	if !ok {
		w, err := a.Configure(args...)
		if err != nil {
			return Outcome[F]{}, err
		}
		return pending(w), nil
	}
	if a.policy(v) {
		target, err := asTarget[F](v)
		if err != nil {
			return Outcome[F]{}, err
		}
		result, err := a.Decorate(target, args...)
		if err != nil {
			return Outcome[F]{}, err
		}
		return applied(result), nil
	}
	w, err := a.Configure(slicex.AppendFirst(args, v)...)
	if err != nil {
		return Outcome[F]{}, err
	}
	return pending(w), nil
}
