package middleware

import (
	"context"

	"github.com/samber/lo"

	"github.com/go-leo/wrapx/wrapper"
)

// Invoker is the canonical call shape wrapped by this package.
type Invoker[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware is the call-time authoring form of a wrapper over Invoker: it
// receives each call together with the next invoker in the chain, so authors
// write interception logic without the closure-returning boilerplate.
type Middleware[Req any, Resp any] func(ctx context.Context, req Req, next Invoker[Req, Resp]) (Resp, error)

// Wrap lifts mw into the combinator layer. The lifted wrapper is normalized,
// so the wrapped invoker keeps the target's name and documentation.
func Wrap[Req any, Resp any](mw Middleware[Req, Resp]) wrapper.Wrapper[Invoker[Req, Resp]] {
	return wrapper.Normalize(func(_ wrapper.Wrapper[Invoker[Req, Resp]], target wrapper.Callable[Invoker[Req, Resp]]) wrapper.Callable[Invoker[Req, Resp]] {
		return target.Map(func(next Invoker[Req, Resp]) Invoker[Req, Resp] {
			return func(ctx context.Context, req Req) (Resp, error) {
				return mw(ctx, req, next)
			}
		})
	})
}

// Chain combines middlewares into one wrapper. The first middleware is
// outermost: it sees the request first and the response last.
func Chain[Req any, Resp any](middlewares ...Middleware[Req, Resp]) wrapper.Wrapper[Invoker[Req, Resp]] {
	wrappers := lo.Map(middlewares, func(mw Middleware[Req, Resp], _ int) wrapper.Wrapper[Invoker[Req, Resp]] {
		return Wrap(mw)
	})
	return wrapper.Compose(wrappers...)
}

// Noop is an invoker that does nothing and returns the zero response.
func Noop[Req any, Resp any]() Invoker[Req, Resp] {
	return func(context.Context, Req) (Resp, error) {
		var resp Resp
		return resp, nil
	}
}
