package formfield

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest declares the fields of a form and the property each one edits.
//
//	fields:
//	  - id: start
//	    path: Start
//	    label: Check-in
//	  - id: notes        # no path: unbound
type Manifest struct {
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec is one declared field.
type FieldSpec struct {
	ID    string `yaml:"id"`
	Path  string `yaml:"path"`
	Label string `yaml:"label"`
}

// LoadManifest parses and checks a YAML manifest. Field ids must be present
// and unique; paths are optional.
func LoadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	seen := make(map[string]struct{}, len(m.Fields))
	for i, f := range m.Fields {
		if f.ID == "" {
			return nil, fmt.Errorf("%w: field %d has no id", ErrInvalidManifest, i)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate field id %q", ErrInvalidManifest, f.ID)
		}
		seen[f.ID] = struct{}{}
	}
	return &m, nil
}

// Binding returns the declared binding, or nil for an unbound field.
func (s FieldSpec) Binding() Binding {
	if s.Path == "" {
		return nil
	}
	return Bind(s.Path)
}

// Build creates one Field per declared spec, in manifest order, and mounts
// them in a new registry. Every field validates through validate.
func (m *Manifest) Build(validate ValidateFunc, opts ...FieldOption) (*Registry, error) {
	reg := &Registry{index: make(map[string]int)}
	for _, spec := range m.Fields {
		fieldOpts := append([]FieldOption{WithID(spec.ID), WithLabel(spec.Label)}, opts...)
		if _, err := reg.Register(NewField(spec.Binding(), validate, fieldOpts...)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
