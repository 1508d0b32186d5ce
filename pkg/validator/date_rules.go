package validator

import (
	"time"
)

// FutureDate validates that the value lies after the current time.
func FutureDate[T any](value func(T) time.Time) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "date_future"},
		pass: func(obj T) bool {
			return value(obj).After(time.Now())
		},
		failed: func(property string) ValidationError {
			return fieldError(property, "date must be in the future", "validation.date_future", nil)
		},
	}
}

func PastDate[T any](value func(T) time.Time) Component[T] {
	return check[T]{
		desc: Descriptor{Kind: KindPredicate, Name: "date_past"},
		pass: func(obj T) bool {
			return value(obj).Before(time.Now())
		},
		failed: func(property string) ValidationError {
			return fieldError(property, "date must be in the past", "validation.date_past", nil)
		},
	}
}

func compareTime(a, b time.Time) int { return a.Compare(b) }

// AfterField validates that the bound date is strictly after the other property.
func AfterField[T any](other string, value, otherValue func(T) time.Time) Component[T] {
	return CompareField(OpGreaterThan, other, value, otherValue, compareTime, "after")
}

// AfterOrEqualField validates that the bound date is not before the other
// property, e.g. an end date relative to a start date.
func AfterOrEqualField[T any](other string, value, otherValue func(T) time.Time) Component[T] {
	return CompareField(OpGreaterThanOrEqual, other, value, otherValue, compareTime, "on or after")
}

func BeforeField[T any](other string, value, otherValue func(T) time.Time) Component[T] {
	return CompareField(OpLessThan, other, value, otherValue, compareTime, "before")
}

func BeforeOrEqualField[T any](other string, value, otherValue func(T) time.Time) Component[T] {
	return CompareField(OpLessThanOrEqual, other, value, otherValue, compareTime, "on or before")
}
