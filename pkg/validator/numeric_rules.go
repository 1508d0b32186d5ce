package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to min.
func Min[T any, N Numeric](value func(T) N, min N) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "min"},
		pass: func(obj T) bool {
			return value(obj) >= min
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must be at least %v", min),
				"validation.min",
				map[string]any{"min": min},
			)
		},
	}
}

// Max validates that a numeric value is less than or equal to max.
func Max[T any, N Numeric](value func(T) N, max N) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "max"},
		pass: func(obj T) bool {
			return value(obj) <= max
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must be at most %v", max),
				"validation.max",
				map[string]any{"max": max},
			)
		},
	}
}

// Between validates an inclusive numeric range.
func Between[T any, N Numeric](value func(T) N, min, max N) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "between"},
		pass: func(obj T) bool {
			v := value(obj)
			return v >= min && v <= max
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must be between %v and %v", min, max),
				"validation.between",
				map[string]any{"min": min, "max": max},
			)
		},
	}
}
