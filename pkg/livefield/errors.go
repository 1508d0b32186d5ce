package livefield

import "errors"

var (
	// ErrSSENotInitialized is returned when a sink has no event stream to write to.
	ErrSSENotInitialized = errors.New("livefield: SSE generator not initialized")

	// ErrUnknownProperty is returned when no manifest field is bound to the property.
	ErrUnknownProperty = errors.New("livefield: no field bound to property")

	// ErrInvalidSignals is returned when the request signals cannot be decoded into the model.
	ErrInvalidSignals = errors.New("livefield: invalid signals")
)
