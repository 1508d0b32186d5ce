package cascade

// Config is the environment-driven configuration of a Coordinator.
// Load it with config.Load.
type Config struct {
	Policy          string `env:"CASCADE_POLICY" envDefault:"fail_fast"`       // Policy is "fail_fast" or "continue".
	CacheDependents bool   `env:"CASCADE_CACHE_DEPENDENTS" envDefault:"false"` // CacheDependents enables the dependent-set memo.
}

// Options converts the configuration into coordinator options.
func (c Config) Options() ([]Option, error) {
	policy, err := ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithPolicy(policy)}
	if c.CacheDependents {
		opts = append(opts, WithDependencyCache())
	}
	return opts, nil
}

// NewFromConfig creates a Coordinator from cfg. Explicit opts are applied
// after the configured ones and win.
func NewFromConfig[T any](v Validator[T], rules RuleDescriber, cfg Config, opts ...Option) (*Coordinator[T], error) {
	configOpts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(v, rules, append(configOpts, opts...)...), nil
}
