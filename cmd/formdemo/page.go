package main

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/formcascade/pkg/formfield"
)

//go:generate templ generate -path ../..

var inputTypes = map[string]string{
	"Start":    "date",
	"End":      "date",
	"Guests":   "number",
	"Children": "number",
	"Email":    "email",
}

func inputType(path string) string {
	if t, ok := inputTypes[path]; ok {
		return t
	}
	return "text"
}

// validateAction is the datastar expression posting path for validation.
func validateAction(path string) string {
	return fmt.Sprintf("@post('/validate/%s')", path)
}

func fieldLabel(spec formfield.FieldSpec) string {
	if spec.Label != "" {
		return spec.Label
	}
	return spec.ID
}

func guestCount(b Booking) string {
	if b.Guests == 1 {
		return "1 guest"
	}
	return fmt.Sprintf("%d guests", b.Guests)
}

// pageSignals is the initial datastar signal object: the model plus an empty
// errors map that live validation fills in.
func pageSignals(initial Booking) (string, error) {
	model, err := json.Marshal(initial)
	if err != nil {
		return "", err
	}
	var signals map[string]any
	if err := json.Unmarshal(model, &signals); err != nil {
		return "", err
	}
	signals["errors"] = map[string]any{}

	out, err := json.Marshal(signals)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
