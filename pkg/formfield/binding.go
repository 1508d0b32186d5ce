package formfield

import (
	"fmt"
	"reflect"
	"strings"
)

// Binding describes which model property a field edits.
type Binding interface {
	// Path returns the dotted property path, e.g. "Address.City".
	Path() (string, error)
}

type pathBinding string

func (p pathBinding) Path() (string, error) {
	if p == "" {
		return "", &PathError{Op: "bind", Err: ErrEmptyPath}
	}
	return string(p), nil
}

// Bind declares the property path explicitly. This is the preferred binding:
// it cannot fail once the path is non-empty.
func Bind(path string) Binding {
	return pathBinding(path)
}

// fieldBinding recovers the path at resolution time by locating the field
// pointer inside the model.
type fieldBinding struct {
	model any
	field any
}

// BindField binds to the member of model addressed by field, for example
// BindField(&form, &form.Address.City) resolves to "Address.City". The path is
// recovered lazily, so an invalid pair surfaces as a *PathError from Path.
// Members of zero-sized types (struct{}, [0]T) cannot be told apart by address
// and always fail with ErrZeroSizeField.
func BindField(model, field any) Binding {
	return fieldBinding{model: model, field: field}
}

func (b fieldBinding) Path() (string, error) {
	mv := reflect.ValueOf(b.model)
	if mv.Kind() != reflect.Ptr || mv.IsNil() {
		return "", &PathError{Op: "bind field", Err: fmt.Errorf("%w: model is %T", ErrNotPointer, b.model)}
	}
	if mv.Elem().Kind() != reflect.Struct {
		return "", &PathError{Op: "bind field", Err: fmt.Errorf("%w: got %s", ErrNotStruct, mv.Elem().Kind())}
	}

	fv := reflect.ValueOf(b.field)
	if fv.Kind() != reflect.Ptr || fv.IsNil() {
		return "", &PathError{Op: "bind field", Err: fmt.Errorf("%w: field is %T", ErrNotPointer, b.field)}
	}

	if fv.Type().Elem().Size() == 0 {
		return "", &PathError{Op: "bind field", Err: fmt.Errorf("%w: %s", ErrZeroSizeField, fv.Type().Elem())}
	}

	segments, ok := findMember(mv.Elem(), fv.Pointer(), fv.Type().Elem())
	if !ok {
		return "", &PathError{Op: "bind field", Err: ErrFieldNotFound}
	}
	return strings.Join(segments, "."), nil
}

// findMember walks exported struct fields depth-first and returns the name
// path of the member whose address and type match. Embedded structs are
// promoted, so their names are not part of the path. Pointers are not
// followed: the bound member must live inside the model's memory.
func findMember(sv reflect.Value, addr uintptr, typ reflect.Type) ([]string, bool) {
	st := sv.Type()
	for i := 0; i < sv.NumField(); i++ {
		sf := st.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := sv.Field(i)

		if fv.UnsafeAddr() == addr && sf.Type == typ {
			return []string{sf.Name}, true
		}

		if fv.Kind() != reflect.Struct {
			continue
		}
		// A struct and its first field share an address; the type check
		// above picks the right one, recursion handles the rest.
		rest, ok := findMember(fv, addr, typ)
		if !ok {
			continue
		}
		if sf.Anonymous {
			return rest, true
		}
		return append([]string{sf.Name}, rest...), true
	}
	return nil, false
}
