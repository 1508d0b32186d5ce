package cascade

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/formcascade/pkg/validator"
)

// RuleDescriber exposes the static shape of a rule set.
// *validator.RuleSet[T] implements it.
type RuleDescriber interface {
	Describe() []validator.RuleDescriptor
}

// Set is an unordered set of property names.
type Set map[string]struct{}

func (s Set) Has(property string) bool {
	_, ok := s[property]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the members in lexical order, for logging and tests.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// DependentsOf returns the properties whose rules contain a comparison
// component targeting changed. Names are compared exactly.
func DependentsOf(rules RuleDescriber, changed string) Set {
	out := make(Set)
	if rules == nil {
		return out
	}
	for _, rule := range rules.Describe() {
		for _, c := range rule.Components {
			if target, ok := c.ComparisonTarget(); ok && target == changed {
				out[rule.Property] = struct{}{}
			}
		}
	}
	return out
}

// Index memoises DependentsOf per changed property. Rule sets are static per
// form type, so entries never expire.
type Index struct {
	rules RuleDescriber
	cache sync.Map // string -> Set
}

func NewIndex(rules RuleDescriber) *Index {
	return &Index{rules: rules}
}

// Dependents returns the cached dependent set for changed. The returned set
// is shared: callers must not modify it.
func (i *Index) Dependents(changed string) Set {
	if cached, ok := i.cache.Load(changed); ok {
		return cached.(Set)
	}
	set := DependentsOf(i.rules, changed)
	actual, _ := i.cache.LoadOrStore(changed, set)
	return actual.(Set)
}
