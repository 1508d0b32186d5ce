package validator

import (
	"context"
	"fmt"
	"strings"
)

// PropertyRule binds an ordered list of components to one property.
type PropertyRule[T any] struct {
	Property   string
	Components []Component[T]
	// StopOnFailure skips the remaining components once one fails.
	StopOnFailure bool
}

// RuleDescriptor is the model-independent view of a PropertyRule.
type RuleDescriptor struct {
	Property   string
	Components []Descriptor
}

// Result is the outcome of a RuleSet validation run.
type Result struct {
	Errors ValidationErrors
}

func (r Result) IsValid() bool {
	return r.Errors.IsEmpty()
}

// Err returns the failures as an error, or nil for a valid result.
func (r Result) Err() error {
	if r.Errors.IsEmpty() {
		return nil
	}
	return r.Errors
}

// Messages returns the error messages in the order the rules reported them.
// It is empty, never nil, for a valid result.
func (r Result) Messages() []string {
	return r.Errors.Messages()
}

// RuleSet is an ordered collection of property rules over T.
// Build it once per form type; it is read-only and safe for concurrent use
// after construction.
type RuleSet[T any] struct {
	rules []PropertyRule[T]
}

func NewRuleSet[T any]() *RuleSet[T] {
	return &RuleSet[T]{}
}

// For appends a rule for property. Panics on an empty property or a nil
// component: rule sets are declared at startup and a broken declaration
// should stop the process.
func (rs *RuleSet[T]) For(property string, components ...Component[T]) *RuleSet[T] {
	return rs.add(PropertyRule[T]{Property: property, Components: components})
}

// ForStop is For with StopOnFailure enabled.
func (rs *RuleSet[T]) ForStop(property string, components ...Component[T]) *RuleSet[T] {
	return rs.add(PropertyRule[T]{Property: property, Components: components, StopOnFailure: true})
}

func (rs *RuleSet[T]) add(rule PropertyRule[T]) *RuleSet[T] {
	if rule.Property == "" {
		panic(fmt.Errorf("%w: empty property name", ErrInvalidComponent))
	}
	for i, c := range rule.Components {
		if c == nil {
			panic(fmt.Errorf("%w: %s: component %d is nil", ErrInvalidComponent, rule.Property, i))
		}
	}
	rs.rules = append(rs.rules, rule)
	return rs
}

// Rules returns the declared rules in declaration order.
func (rs *RuleSet[T]) Rules() []PropertyRule[T] {
	out := make([]PropertyRule[T], len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Describe returns descriptors for every rule, in declaration order.
func (rs *RuleSet[T]) Describe() []RuleDescriptor {
	out := make([]RuleDescriptor, 0, len(rs.rules))
	for _, rule := range rs.rules {
		descs := make([]Descriptor, 0, len(rule.Components))
		for _, c := range rule.Components {
			descs = append(descs, c.Descriptor())
		}
		out = append(out, RuleDescriptor{Property: rule.Property, Components: descs})
	}
	return out
}

// Validate runs the rules for the given properties against obj. With no
// properties every rule runs. A rule is included when its property equals a
// requested one or is nested below it, so "Address" includes "Address.City".
// Matching is exact and case-sensitive.
//
// The returned error is non-nil only when a component could not be evaluated;
// validation failures are reported through Result.
func (rs *RuleSet[T]) Validate(ctx context.Context, obj T, properties ...string) (Result, error) {
	var res Result
	for _, rule := range rs.rules {
		if !includes(properties, rule.Property) {
			continue
		}
		for _, c := range rule.Components {
			verr, err := c.Validate(ctx, rule.Property, obj)
			if err != nil {
				return Result{}, err
			}
			if verr == nil {
				continue
			}
			res.Errors.Add(*verr)
			if rule.StopOnFailure {
				break
			}
		}
	}
	return res, nil
}

func includes(scope []string, property string) bool {
	if len(scope) == 0 {
		return true
	}
	for _, p := range scope {
		if property == p || strings.HasPrefix(property, p+".") {
			return true
		}
	}
	return false
}
