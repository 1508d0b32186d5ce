package formfield

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbound is returned by ResolvePath for a handle without a binding.
	ErrUnbound = errors.New("field is not bound to a property")

	// ErrNotPointer is returned when a runtime binding is given a non-pointer model or field.
	ErrNotPointer = errors.New("binding target must be a non-nil pointer")

	// ErrNotStruct is returned when a runtime binding model does not point to a struct.
	ErrNotStruct = errors.New("binding model must point to a struct")

	// ErrFieldNotFound is returned when the field pointer does not address a member of the model.
	ErrFieldNotFound = errors.New("field pointer does not address a model member")

	// ErrZeroSizeField is returned when the bound member has a zero-sized type.
	// Such members may share their address with a neighbour and cannot be
	// located by pointer; bind them with Bind instead.
	ErrZeroSizeField = errors.New("zero-sized field cannot be bound by pointer")

	// ErrEmptyPath is returned when an explicit binding declares an empty path.
	ErrEmptyPath = errors.New("binding path is empty")

	// ErrNilHandle is returned when registering a nil handle.
	ErrNilHandle = errors.New("nil field handle")

	// ErrDuplicateField is returned when a handle id is registered twice.
	ErrDuplicateField = errors.New("field already registered")

	// ErrInvalidManifest is returned when a form manifest cannot be parsed or is inconsistent.
	ErrInvalidManifest = errors.New("invalid form manifest")
)

// PathError describes a binding whose property path could not be recovered.
type PathError struct {
	Op  string
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("formfield: %s: %v", e.Op, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
