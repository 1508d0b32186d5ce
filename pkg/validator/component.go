package validator

import "context"

// ComponentKind tags the variant of a rule component.
type ComponentKind uint8

const (
	// KindPredicate checks the bound property in isolation.
	KindPredicate ComponentKind = iota
	// KindComparison checks the bound property against another property.
	KindComparison
	// KindExpression evaluates an expr-lang expression against the whole object.
	KindExpression
)

func (k ComponentKind) String() string {
	switch k {
	case KindPredicate:
		return "predicate"
	case KindComparison:
		return "comparison"
	case KindExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Descriptor is the static, model-independent description of a component.
// Dependency discovery reads descriptors only and never evaluates components.
type Descriptor struct {
	Kind ComponentKind
	// Name identifies the check, e.g. "min_length" or "gte_field".
	Name string
	// CompareTo is the member to compare for KindComparison components.
	CompareTo string
}

// ComparisonTarget returns the property this component compares against.
// The second value is false for anything but a comparison with a target.
func (d Descriptor) ComparisonTarget() (string, bool) {
	if d.Kind != KindComparison || d.CompareTo == "" {
		return "", false
	}
	return d.CompareTo, true
}

// Component is one atomic check within a PropertyRule.
//
// Validate returns nil when the check passes and a ValidationError describing
// the failure otherwise. A non-nil error means the check itself could not run.
type Component[T any] interface {
	Descriptor() Descriptor
	Validate(ctx context.Context, property string, obj T) (*ValidationError, error)
}

// check is the shared implementation behind most built-in components.
type check[T any] struct {
	desc   Descriptor
	pass   func(obj T) bool
	failed func(property string) ValidationError
}

func (c check[T]) Descriptor() Descriptor { return c.desc }

func (c check[T]) Validate(_ context.Context, property string, obj T) (*ValidationError, error) {
	if c.pass(obj) {
		return nil, nil
	}
	verr := c.failed(property)
	return &verr, nil
}

type messageOverride[T any] struct {
	Component[T]
	message string
}

func (m messageOverride[T]) Validate(ctx context.Context, property string, obj T) (*ValidationError, error) {
	verr, err := m.Component.Validate(ctx, property, obj)
	if err != nil || verr == nil {
		return verr, err
	}
	out := *verr
	out.Message = m.message
	return &out, nil
}

// WithMessage replaces the message reported by c while keeping its descriptor,
// so an overridden comparison still participates in dependency discovery.
func WithMessage[T any](c Component[T], message string) Component[T] {
	return messageOverride[T]{Component: c, message: message}
}

// fieldError builds the conventional error payload for a property.
func fieldError(property, message, key string, values map[string]any) ValidationError {
	tv := map[string]any{"field": property}
	for k, v := range values {
		tv[k] = v
	}
	return ValidationError{
		Field:             property,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: tv,
	}
}
