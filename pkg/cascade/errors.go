package cascade

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidObject is returned by the untyped hooks when the model is not of
	// the coordinator's type.
	ErrInvalidObject = errors.New("cascade: object does not match validator type")

	// ErrInvalidPolicy is returned when a configured policy name is unknown.
	ErrInvalidPolicy = errors.New("cascade: invalid policy")
)

// FieldError records a dependent field whose revalidation failed.
type FieldError struct {
	FieldID  string
	Property string
	Err      error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("revalidate %s (%s): %v", e.Property, e.FieldID, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// CascadeError aggregates dependent failures collected under ContinueOnError.
type CascadeError struct {
	Property string
	Failures []FieldError
}

func (e *CascadeError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("cascade for %s: %d dependent field(s) failed: %s",
		e.Property, len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes each failure to errors.Is and errors.As.
func (e *CascadeError) Unwrap() []error {
	out := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		out = append(out, f)
	}
	return out
}
