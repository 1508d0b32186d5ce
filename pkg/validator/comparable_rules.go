package validator

import "fmt"

// Required validates that a comparable value is not its zero value.
func Required[T any, V comparable](value func(T) V) Component[T] {
	var zero V
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "required"},
		pass: func(obj T) bool {
			return value(obj) != zero
		},
		failed: func(property string) ValidationError {
			return fieldError(property, "field is required", "validation.required", nil)
		},
	}
}

// EqualField validates that the bound value equals the value of the other
// property, e.g. a password confirmation.
func EqualField[T any, V comparable](other string, value, otherValue func(T) V) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindComparison, Name: "eq_field", CompareTo: other},
		pass: func(obj T) bool {
			return value(obj) == otherValue(obj)
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must match %s", other),
				"validation.eq_field",
				map[string]any{"other": other},
			)
		},
	}
}

func NotEqualField[T any, V comparable](other string, value, otherValue func(T) V) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindComparison, Name: "ne_field", CompareTo: other},
		pass: func(obj T) bool {
			return value(obj) != otherValue(obj)
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must differ from %s", other),
				"validation.ne_field",
				map[string]any{"other": other},
			)
		},
	}
}
