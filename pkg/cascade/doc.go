// Package cascade re-validates dependent form fields when one property of a
// model changes.
//
// When a user edits "Start" on a booking form, the rule "End must be on or
// after Start" may flip without "End" being touched. The Coordinator finds
// such dependents from the rule set, re-validates the mounted fields bound to
// them, and then validates the changed property itself:
//
//	rules := validator.NewRuleSet[Booking]().
//	    For("Start", validator.Required(start)).
//	    For("End", validator.AfterOrEqualField("Start", end, start))
//
//	c := cascade.New[Booking](rules, rules, cascade.WithLogger(log))
//	msgs, err := c.ValidateWithDependents(ctx, booking, "Start", registry)
//
// # Dependency discovery
//
// DependentsOf scans rule descriptors for comparison components whose member
// to compare equals the changed property (exact, case-sensitive match) and
// collects the owning rules' properties into a Set. It is a pure function of
// the rule set; WithDependencyCache memoises it per changed property.
//
// # Matching fields
//
// Every registry handle is resolved with formfield.ResolvePath. Unbound
// handles never match. Handles whose binding fails to resolve are treated as
// unbound too, and the failure is logged at debug level so a broken binding
// does not go unnoticed.
//
// # Failure policy
//
// Dependents are re-validated sequentially in registry order, since each one
// mutates shared UI error state. With the default FailFast policy the first
// error aborts the cascade, is returned unchanged, and the changed property
// is not validated. ContinueOnError runs every dependent, still validates the
// changed property, and reports failures as a *CascadeError.
//
// A cancelled context stops the cascade before the next dependent. There are
// no timeouts or retries.
package cascade
