package schedule

// Option customizes Linearize's behavior.
type Option func(*config)

type config struct {
	hoistExtCall bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithExtCallHoist enables the optional ExtCall-first heuristic: when
// an Input feeds directly into a Sin/Cos, that (leaf, call) pair is
// moved to the front of the schedule so the expensive external call
// happens while few other values are live. The scheduler's topological
// and CSE guarantees hold with or without this heuristic enabled; it
// is a register-pressure optimization, not a correctness requirement.
func WithExtCallHoist(enabled bool) Option {
	return func(c *config) { c.hoistExtCall = enabled }
}
