// Package validator provides a declarative, generic rule engine for validating
// a single model type property by property.
//
// A RuleSet[T] is an ordered list of PropertyRule values. Each rule binds one
// property name to a list of Component[T] checks. Components come in three
// kinds, tagged by Descriptor.Kind:
//
//   - KindPredicate   – checks the bound property alone (NotEmpty, Min, Email, Must, ...)
//   - KindComparison  – checks the bound property against another named property
//     ("member to compare"), e.g. AfterOrEqualField or GreaterThanField
//   - KindExpression  – evaluates an expr-lang expression against the whole model
//
// Comparison components expose their target through Descriptor.ComparisonTarget,
// which lets callers discover which properties depend on which without
// evaluating anything or inspecting concrete component types.
//
// # Usage
//
//	type Booking struct {
//	    Start time.Time
//	    End   time.Time
//	}
//
//	rules := validator.NewRuleSet[Booking]().
//	    For("Start", validator.Required(func(b Booking) time.Time { return b.Start })).
//	    For("End", validator.AfterOrEqualField("Start",
//	        func(b Booking) time.Time { return b.End },
//	        func(b Booking) time.Time { return b.Start },
//	    ))
//
//	res, err := rules.Validate(ctx, booking, "End")
//	if err != nil {
//	    // a component could not be evaluated
//	}
//	if !res.IsValid() {
//	    fmt.Println(res.Messages())
//	}
//
// # Error Handling
//
// Validation failures are values: Result.Errors is a ValidationErrors slice
// carrying field names, messages and translation keys. The error return of
// Validate is reserved for evaluation faults such as an expression that fails
// at runtime (ErrExpressionRun). Result.Err turns failures into an error that
// matches ErrValidationFailed; IsValidationError tells it apart from an
// evaluation fault and ExtractValidationErrors recovers the list.
//
// Ad-hoc checks built as a Rule can be attached to a RuleSet through FromRule.
package validator
