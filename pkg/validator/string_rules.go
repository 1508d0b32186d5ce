package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NotEmpty validates that a string is not empty after trimming whitespace.
func NotEmpty[T any](value func(T) string) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "required"},
		pass: func(obj T) bool {
			return strings.TrimSpace(value(obj)) != ""
		},
		failed: func(property string) ValidationError {
			return fieldError(property, "field is required", "validation.required", nil)
		},
	}
}

// MinLength validates the rune count of a string.
func MinLength[T any](value func(T) string, min int) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "min_length"},
		pass: func(obj T) bool {
			return utf8.RuneCountInString(value(obj)) >= min
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must be at least %d characters long", min),
				"validation.min_length",
				map[string]any{"min": min},
			)
		},
	}
}

func MaxLength[T any](value func(T) string, max int) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "max_length"},
		pass: func(obj T) bool {
			return utf8.RuneCountInString(value(obj)) <= max
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must be at most %d characters long", max),
				"validation.max_length",
				map[string]any{"max": max},
			)
		},
	}
}

func Length[T any](value func(T) string, exact int) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "exact_length"},
		pass: func(obj T) bool {
			return utf8.RuneCountInString(value(obj)) == exact
		},
		failed: func(property string) ValidationError {
			return fieldError(property,
				fmt.Sprintf("must be exactly %d characters long", exact),
				"validation.exact_length",
				map[string]any{"length": exact},
			)
		},
	}
}
