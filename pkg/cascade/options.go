package cascade

import (
	"fmt"
	"log/slog"
)

// Policy decides what happens when a dependent field fails to revalidate.
type Policy string

const (
	// FailFast aborts the cascade on the first dependent failure and returns
	// that error unchanged. The changed property is not validated.
	FailFast Policy = "fail_fast"
	// ContinueOnError revalidates every dependent, then validates the changed
	// property and returns its messages together with a *CascadeError.
	ContinueOnError Policy = "continue"
)

// ParsePolicy maps a configuration value to a Policy. Empty means FailFast.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", FailFast:
		return FailFast, nil
	case ContinueOnError:
		return ContinueOnError, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

type options struct {
	policy Policy
	cache  bool
	logger *slog.Logger
}

func defaultOptions() *options {
	return &options{
		policy: FailFast,
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures a Coordinator.
type Option func(*options)

// WithPolicy sets the dependent failure policy. Panics on unknown policies
// to fail at startup rather than at the first failing cascade.
func WithPolicy(p Policy) Option {
	if _, err := ParsePolicy(string(p)); err != nil {
		panic(err)
	}
	return func(o *options) {
		if p == "" {
			p = FailFast
		}
		o.policy = p
	}
}

// WithDependencyCache memoises dependent sets per changed property.
// Safe only while the rule set is not modified after construction.
func WithDependencyCache() Option {
	return func(o *options) { o.cache = true }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
