package optional

type option struct {
	Policy TargetPolicy
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Policy == nil {
		o.Policy = Invokable
	}
	return o
}

type Option func(*option)

// Policy overrides the adapter's target-disambiguation policy.
func Policy(policy TargetPolicy) Option {
	return func(o *option) {
		o.Policy = policy
	}
}
