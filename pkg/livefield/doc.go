// Package livefield streams live form validation to the browser.
//
// A Form combines a formfield.Manifest with a cascade.Coordinator. On every
// change the browser posts its signals to the Form handler; the handler
// decodes them into the model, re-validates the dependent fields and the
// changed field, and pushes each resulting State back over server-sent events
// using datastar:
//
//	form := livefield.NewForm(manifest, coordinator)
//	r.Post("/validate/{property}", form.Handler(func(r *http.Request) string {
//		return chi.URLParam(r, "property")
//	}))
//
// SubmitHandler validates the whole model on submission, publishes every bound
// field and hands a valid model to the caller's callback.
//
// Every published state patches the errors.<key> signal and morphs the
// element with id ErrorListID(path), rendered by ErrorList.
package livefield
