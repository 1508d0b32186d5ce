// Package formfield models the UI side of a form: live field handles, the
// property each handle is bound to, and the registry of mounted handles.
//
// # Bindings
//
// A Binding maps a field to a dotted property path such as "Address.City".
// Bind declares the path explicitly and is the recommended form. BindField
// recovers the path at runtime from a pointer into the model:
//
//	form := &Booking{}
//	b := formfield.BindField(form, &form.Address.City) // "Address.City"
//
// Runtime recovery can fail (wrong model, pointer outside the model). The
// failure is an explicit *PathError from ResolvePath. Resolve applies the
// "treat as unbound" policy and returns the empty path instead, which callers
// that only match paths can use directly.
//
// # Registry
//
// Registry keeps mounted handles in registration order. It is safe for
// concurrent Register/Unregister/Handles calls; it does not serialise the
// revalidations triggered on the handles themselves.
//
// # Manifest
//
// A YAML Manifest declares field ids, labels and paths for a form so the
// registry for each request can be built without reflection.
package formfield
