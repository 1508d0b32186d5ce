package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidComponent is returned when a rule is declared with a nil component
	// or an empty property name.
	ErrInvalidComponent = errors.New("invalid rule component")

	// ErrExpressionCompile is returned when an expression component cannot be compiled
	// against the model type.
	ErrExpressionCompile = errors.New("failed to compile validation expression")

	// ErrExpressionRun is returned when a compiled expression fails at evaluation time
	// or does not produce a boolean.
	ErrExpressionRun = errors.New("failed to evaluate validation expression")
)
