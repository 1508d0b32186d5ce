package validator

import (
	"cmp"
	"fmt"
)

// Operator is the relation a comparison component enforces between the bound
// property (left) and the member to compare (right).
type Operator string

const (
	OpGreaterThan        Operator = "gt"
	OpGreaterThanOrEqual Operator = "gte"
	OpLessThan           Operator = "lt"
	OpLessThanOrEqual    Operator = "lte"
)

func (op Operator) holds(c int) bool {
	switch op {
	case OpGreaterThan:
		return c > 0
	case OpGreaterThanOrEqual:
		return c >= 0
	case OpLessThan:
		return c < 0
	case OpLessThanOrEqual:
		return c <= 0
	default:
		return false
	}
}

func (op Operator) phrase() string {
	switch op {
	case OpGreaterThan:
		return "greater than"
	case OpGreaterThanOrEqual:
		return "greater than or equal to"
	case OpLessThan:
		return "less than"
	case OpLessThanOrEqual:
		return "less than or equal to"
	default:
		return string(op)
	}
}

// CompareField builds a comparison component from an arbitrary three-way
// compare function. The returned component reports other as its comparison
// target. The phrase is used in the default message, e.g. "after" yields
// "must be after Start".
func CompareField[T, V any](op Operator, other string, value, otherValue func(T) V, compare func(a, b V) int, phrase string) Component[T] {
	name := string(op) + "_field"
	return check[T]{
		desc: Descriptor{Kind: KindComparison, Name: name, CompareTo: other},
		pass: func(obj T) bool {
			return op.holds(compare(value(obj), otherValue(obj)))
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must be %s %s", phrase, other),
				"validation."+name,
				map[string]any{"other": other},
			)
		},
	}
}

func GreaterThanField[T any, V cmp.Ordered](other string, value, otherValue func(T) V) Component[T] {
	return CompareField(OpGreaterThan, other, value, otherValue, cmp.Compare[V], OpGreaterThan.phrase())
}

func GreaterThanOrEqualField[T any, V cmp.Ordered](other string, value, otherValue func(T) V) Component[T] {
	return CompareField(OpGreaterThanOrEqual, other, value, otherValue, cmp.Compare[V], OpGreaterThanOrEqual.phrase())
}

func LessThanField[T any, V cmp.Ordered](other string, value, otherValue func(T) V) Component[T] {
	return CompareField(OpLessThan, other, value, otherValue, cmp.Compare[V], OpLessThan.phrase())
}

func LessThanOrEqualField[T any, V cmp.Ordered](other string, value, otherValue func(T) V) Component[T] {
	return CompareField(OpLessThanOrEqual, other, value, otherValue, cmp.Compare[V], OpLessThanOrEqual.phrase())
}
