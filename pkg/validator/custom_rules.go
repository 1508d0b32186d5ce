package validator

import "context"

// Must builds a predicate component from an arbitrary check.
func Must[T any](name string, pass func(T) bool, message string) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: name},
		pass: pass,
		failed: func(property string) ValidationError {
			return fieldError(property, message, "validation."+name, nil)
		},
	}
}

// FromRule adapts an ad-hoc Rule built from the current object. The rule's
// Field is replaced with the property the component is bound to.
func FromRule[T any](name string, build func(T) Rule) Component[T] {
	return ruleComponent[T]{name: name, build: build}
}

type ruleComponent[T any] struct {
	name  string
	build func(T) Rule
}

func (r ruleComponent[T]) Descriptor() Descriptor {
	return Descriptor{Kind: KindPredicate, Name: r.name}
}

func (r ruleComponent[T]) Validate(_ context.Context, property string, obj T) (*ValidationError, error) {
	rule := r.build(obj)
	if rule.Check == nil || rule.Check() {
		return nil, nil
	}
	verr := rule.Error
	verr.Field = property
	return &verr, nil
}
