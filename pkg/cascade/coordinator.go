package cascade

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formcascade/pkg/formfield"
	"github.com/dmitrymomot/formcascade/pkg/logger"
	"github.com/dmitrymomot/formcascade/pkg/validator"
)

// Validator validates obj restricted to the given property paths.
// *validator.RuleSet[T] implements it.
type Validator[T any] interface {
	Validate(ctx context.Context, obj T, properties ...string) (validator.Result, error)
}

// FieldRegistry is the read-only view of the mounted form fields.
// *formfield.Registry implements it.
type FieldRegistry interface {
	Handles() []formfield.Handle
}

// Hook is the property-level validation callback shape form layers register.
type Hook func(ctx context.Context, obj any, property string) ([]string, error)

// Coordinator validates a changed property and re-validates the form fields
// whose rules compare against it.
//
// A Coordinator holds no per-call state and can be shared. It provides no
// mutual exclusion between cascades: callers must not run two cascades
// against the same registry at once.
type Coordinator[T any] struct {
	validator  Validator[T]
	dependents func(string) Set
	policy     Policy
	logger     *slog.Logger
}

// New creates a Coordinator. v runs the validations, rules describes the rule
// set for dependency discovery; usually both are the same *validator.RuleSet.
func New[T any](v Validator[T], rules RuleDescriber, opts ...Option) *Coordinator[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &Coordinator[T]{
		validator: v,
		policy:    o.policy,
		logger:    o.logger.With(logger.Component("cascade")),
	}
	if o.cache {
		c.dependents = NewIndex(rules).Dependents
	} else {
		c.dependents = func(changed string) Set { return DependentsOf(rules, changed) }
	}
	return c
}

// Policy returns the configured dependent failure policy.
func (c *Coordinator[T]) Policy() Policy { return c.policy }

// Dependents returns the properties whose rules compare against property.
func (c *Coordinator[T]) Dependents(property string) Set {
	return c.dependents(property)
}

// ValidateOnly validates property in isolation. The result is empty, never
// nil, when the property is valid; otherwise it holds the validator's
// messages in report order. Validator errors are returned unchanged.
func (c *Coordinator[T]) ValidateOnly(ctx context.Context, obj T, property string) ([]string, error) {
	res, err := c.validator.Validate(ctx, obj, property)
	if err != nil {
		return nil, err
	}
	if res.IsValid() {
		return []string{}, nil
	}
	return res.Messages(), nil
}

// ValidateAll validates every rule against obj. Failures are returned as
// validator.ValidationErrors; any other error means a rule could not run.
func (c *Coordinator[T]) ValidateAll(ctx context.Context, obj T) error {
	res, err := c.validator.Validate(ctx, obj)
	if err != nil {
		return err
	}
	return res.Err()
}

// ValidateWithDependents re-validates every mounted field bound to a
// dependent of property, one at a time in registry order, then validates
// property itself and returns its messages.
//
// Displaying the returned messages is up to the caller; only dependent
// fields update their own state.
//
// Under FailFast the first dependent error aborts the cascade and is returned
// as is. Under ContinueOnError all dependents run and their failures are
// returned as a *CascadeError alongside the messages.
func (c *Coordinator[T]) ValidateWithDependents(ctx context.Context, obj T, property string, registry FieldRegistry) ([]string, error) {
	deps := c.dependents(property)
	targets := c.match(ctx, deps, registry)

	c.logger.DebugContext(ctx, "cascade started",
		logger.Property(property),
		logger.Dependents(deps.Sorted()),
		logger.Count(len(targets)),
	)

	var failures []FieldError
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.logger.DebugContext(ctx, "revalidating dependent field",
			logger.Property(t.path), logger.FieldID(t.handle.ID()))

		if err := t.handle.Revalidate(ctx); err != nil {
			c.logger.WarnContext(ctx, "dependent field revalidation failed",
				logger.Property(t.path), logger.FieldID(t.handle.ID()), logger.Error(err))
			if c.policy == FailFast {
				return nil, err
			}
			failures = append(failures, FieldError{FieldID: t.handle.ID(), Property: t.path, Err: err})
		}
	}

	messages, err := c.ValidateOnly(ctx, obj, property)
	if len(failures) == 0 {
		return messages, err
	}

	cascadeErr := &CascadeError{Property: property, Failures: failures}
	c.logger.WarnContext(ctx, "cascade finished with failed dependents",
		logger.Property(property),
		logger.Errors(cascadeErr.Unwrap()...),
	)
	if err != nil {
		return nil, errors.Join(err, cascadeErr)
	}
	return messages, cascadeErr
}

type target struct {
	handle formfield.Handle
	path   string
}

// match keeps registry handles whose resolved path is in deps, in registry
// order. A binding that fails to resolve is treated as unbound and logged.
func (c *Coordinator[T]) match(ctx context.Context, deps Set, registry FieldRegistry) []target {
	if deps.Len() == 0 || registry == nil {
		return nil
	}

	var out []target
	for _, h := range registry.Handles() {
		path, err := formfield.ResolvePath(h)
		if err != nil {
			if !formfield.IsUnbound(err) {
				c.logger.DebugContext(ctx, "field binding unresolvable, treating as unbound",
					logger.FieldID(h.ID()), logger.Error(err))
			}
			continue
		}
		if deps.Has(path) {
			out = append(out, target{handle: h, path: path})
		}
	}
	return out
}

// Bind returns a formfield.ValidateFunc validating paths of obj in isolation.
// Fields built with it re-validate against that snapshot of the model.
func (c *Coordinator[T]) Bind(obj T) formfield.ValidateFunc {
	return func(ctx context.Context, path string) ([]string, error) {
		return c.ValidateOnly(ctx, obj, path)
	}
}

// OnlyHook exposes ValidateOnly as an untyped Hook.
func (c *Coordinator[T]) OnlyHook() Hook {
	return func(ctx context.Context, obj any, property string) ([]string, error) {
		model, err := c.model(obj)
		if err != nil {
			return nil, err
		}
		return c.ValidateOnly(ctx, model, property)
	}
}

// DependentHook exposes ValidateWithDependents over registry as an untyped Hook.
func (c *Coordinator[T]) DependentHook(registry FieldRegistry) Hook {
	return func(ctx context.Context, obj any, property string) ([]string, error) {
		model, err := c.model(obj)
		if err != nil {
			return nil, err
		}
		return c.ValidateWithDependents(ctx, model, property, registry)
	}
}

// model accepts either T or a non-nil *T.
func (c *Coordinator[T]) model(obj any) (T, error) {
	switch v := obj.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var zero T
	return zero, ErrInvalidObject
}
