package formfield

import (
	"context"
	"errors"
)

// Handle is one live, mounted form field.
type Handle interface {
	// ID identifies the handle within a registry.
	ID() string
	// Binding returns nil when the field is not bound to a property.
	Binding() Binding
	// Revalidate re-runs validation for the field and updates its own error
	// state. It blocks until done.
	Revalidate(ctx context.Context) error
}

// ResolvePath returns the property path a handle is bound to.
// Unbound handles yield ErrUnbound; bindings that cannot be resolved yield
// the binding's *PathError.
func ResolvePath(h Handle) (string, error) {
	if h == nil {
		return "", ErrUnbound
	}
	b := h.Binding()
	if b == nil {
		return "", ErrUnbound
	}
	return b.Path()
}

// Resolve is the best-effort form of ResolvePath: any failure, including an
// unbound handle, yields the empty path. Use ResolvePath when a broken
// binding must be told apart from an intentionally unbound field.
func Resolve(h Handle) string {
	path, err := ResolvePath(h)
	if err != nil {
		return ""
	}
	return path
}

// IsUnbound reports whether err means the handle simply has no binding.
func IsUnbound(err error) bool {
	return errors.Is(err, ErrUnbound)
}
