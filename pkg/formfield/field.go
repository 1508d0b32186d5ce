package formfield

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ValidateFunc validates a single property path and returns its messages.
// It matches the hook signature produced by the cascade coordinator once the
// model has been captured.
type ValidateFunc func(ctx context.Context, path string) ([]string, error)

// Observer is notified after a field's error state changed.
type Observer func(ctx context.Context, f *Field) error

// Field is the default Handle implementation. It owns the field-level error
// state shown next to the input.
type Field struct {
	id        string
	label     string
	binding   Binding
	validate  ValidateFunc
	observers []Observer

	mu       sync.RWMutex
	messages []string
}

// FieldOption configures a Field.
type FieldOption func(*Field)

// WithID overrides the generated identifier.
func WithID(id string) FieldOption {
	return func(f *Field) {
		if id != "" {
			f.id = id
		}
	}
}

func WithLabel(label string) FieldOption {
	return func(f *Field) { f.label = label }
}

// OnUpdate registers an observer called after every revalidation and
// SetMessages. An observer error is returned from Revalidate.
func OnUpdate(o Observer) FieldOption {
	return func(f *Field) {
		if o != nil {
			f.observers = append(f.observers, o)
		}
	}
}

// NewField creates a field. A nil binding produces an unbound field, and a
// nil validate func makes Revalidate clear the error state.
func NewField(binding Binding, validate ValidateFunc, opts ...FieldOption) *Field {
	f := &Field{
		id:       uuid.NewString(),
		binding:  binding,
		validate: validate,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) ID() string       { return f.id }
func (f *Field) Label() string    { return f.label }
func (f *Field) Binding() Binding { return f.binding }

// Path is a convenience for Resolve(f).
func (f *Field) Path() string { return Resolve(f) }

// Messages returns a copy of the current error messages.
func (f *Field) Messages() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.messages)
}

// Valid reports whether the field currently shows no errors.
func (f *Field) Valid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.messages) == 0
}

// Revalidate validates the bound property and stores the result. Unbound or
// unresolvable fields have nothing to validate and are cleared. A validation
// error leaves the previous state untouched.
func (f *Field) Revalidate(ctx context.Context) error {
	path := Resolve(f)
	if path == "" || f.validate == nil {
		return f.SetMessages(ctx, nil)
	}

	messages, err := f.validate(ctx, path)
	if err != nil {
		return err
	}
	return f.SetMessages(ctx, messages)
}

// SetMessages replaces the error state and notifies observers. Callers use it
// to display the result for the field that triggered a cascade.
func (f *Field) SetMessages(ctx context.Context, messages []string) error {
	f.mu.Lock()
	f.messages = slices.Clone(messages)
	f.mu.Unlock()

	for _, o := range f.observers {
		if err := o(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
