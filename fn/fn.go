// Package fn provides small plain-function combinators used alongside the
// wrapper toolkit.
package fn

// Iden returns its argument. It is the left and right identity of Comp.
func Iden[A any](a A) A {
	return a
}

// Comp is left-to-right function composition: Comp(f, g)(x) == g(f(x)).
func Comp[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and returns a.
func Const[B any, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Curry turns a two-argument function into a function that accepts the first
// argument and returns a function accepting the second.
func Curry[A any, B any, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry inverts Curry, turning a curried function back into one that
// accepts both arguments up front.
func Uncurry[A any, B any, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Apply threads value through transforms from left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Chain combines transforms into one function, applied from right to left so
// the first transform is outermost.
func Chain[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		for i := len(transforms) - 1; i >= 0; i-- {
			value = transforms[i](value)
		}
		return value
	}
}
