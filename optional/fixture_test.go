package optional

import "github.com/go-leo/wrapx/wrapper"

type emit func() []string

func newTarget() wrapper.Callable[emit] {
	return wrapper.New("f", "emits f", emit(func() []string {
		return []string{"f"}
	}))
}

// surround builds a wrapper that emits before, then the target's output,
// then after.
func surround(before string, after string) wrapper.Wrapper[emit] {
	return wrapper.Normalize(func(_ wrapper.Wrapper[emit], target wrapper.Callable[emit]) wrapper.Callable[emit] {
		return target.Map(func(next emit) emit {
			return func() []string {
				return append(append([]string{before}, next()...), after)
			}
		})
	})
}

type fooConfig struct {
	Bar string
	Baz string
}

type fooOption func(*fooConfig)

func fooBar(bar string) fooOption {
	return func(cfg *fooConfig) {
		cfg.Bar = bar
	}
}

func fooBaz(baz string) fooOption {
	return func(cfg *fooConfig) {
		cfg.Baz = baz
	}
}

// fooFactory builds a wrapper from named options, every one defaulted.
func fooFactory(opts ...fooOption) wrapper.Wrapper[emit] {
	cfg := fooConfig{Bar: "B", Baz: "Z"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return surround(cfg.Bar, cfg.Baz)
}
