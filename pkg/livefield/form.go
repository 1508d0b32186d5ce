package livefield

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formcascade/pkg/cascade"
	"github.com/dmitrymomot/formcascade/pkg/formfield"
	"github.com/dmitrymomot/formcascade/pkg/logger"
	"github.com/dmitrymomot/formcascade/pkg/validator"
)

// Form serves live validation for one form type. Each request gets a fresh
// registry built from the manifest and bound to the request's model, so a
// Form holds no per-request state and can be shared between handlers.
type Form[T any] struct {
	manifest    *formfield.Manifest
	coordinator *cascade.Coordinator[T]
	decode      func(r *http.Request, model *T) error
	logger      *slog.Logger
}

// FormOption configures a Form.
type FormOption[T any] func(*Form[T])

// WithFormLogger sets the logger. Nil loggers are ignored.
func WithFormLogger[T any](l *slog.Logger) FormOption[T] {
	return func(f *Form[T]) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithDecoder replaces datastar.ReadSignals as the way the model is read from
// a request.
func WithDecoder[T any](decode func(r *http.Request, model *T) error) FormOption[T] {
	return func(f *Form[T]) {
		if decode != nil {
			f.decode = decode
		}
	}
}

func NewForm[T any](manifest *formfield.Manifest, coordinator *cascade.Coordinator[T], opts ...FormOption[T]) *Form[T] {
	f := &Form[T]{
		manifest:    manifest,
		coordinator: coordinator,
		decode: func(r *http.Request, model *T) error {
			return datastar.ReadSignals(r, model)
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("livefield"))
	return f
}

// Manifest returns the form's field declarations.
func (f *Form[T]) Manifest() *formfield.Manifest { return f.manifest }

// Knows reports whether a manifest field is bound to property.
func (f *Form[T]) Knows(property string) bool {
	if property == "" {
		return false
	}
	for _, spec := range f.manifest.Fields {
		if spec.Path == property {
			return true
		}
	}
	return false
}

// Validate runs the cascade for a change of property on model. Dependent
// fields publish their new state to sink as they are revalidated; the changed
// field's messages are published last.
//
// A cascade error from the ContinueOnError policy is returned after the
// changed field has been published.
func (f *Form[T]) Validate(ctx context.Context, model T, property string, sink Sink) error {
	if !f.Knows(property) {
		return ErrUnknownProperty
	}

	publish := func(ctx context.Context, fld *formfield.Field) error {
		return sink.Publish(ctx, StateOf(fld))
	}
	registry, err := f.manifest.Build(f.coordinator.Bind(model), formfield.OnUpdate(publish))
	if err != nil {
		return err
	}

	messages, cascadeErr := f.coordinator.ValidateWithDependents(ctx, model, property, registry)
	if messages == nil {
		return cascadeErr
	}

	for _, h := range registry.ByPath(property) {
		fld, ok := h.(*formfield.Field)
		if !ok {
			continue
		}
		if err := fld.SetMessages(ctx, messages); err != nil {
			return errors.Join(err, cascadeErr)
		}
	}
	return cascadeErr
}

// Handler returns an endpoint validating the property named by extract,
// e.g. a chi URL parameter. The model is read from the request signals and
// the results are streamed back as datastar events.
func (f *Form[T]) Handler(extract func(r *http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		property := extract(r)
		if !f.Knows(property) {
			f.logger.DebugContext(ctx, "unknown property", logger.Handler("validate"), logger.Property(property))
			http.Error(w, ErrUnknownProperty.Error(), http.StatusNotFound)
			return
		}

		var model T
		if err := f.decode(r, &model); err != nil {
			f.logger.DebugContext(ctx, "failed to read signals", logger.Handler("validate"), logger.Property(property), logger.Error(err))
			http.Error(w, ErrInvalidSignals.Error(), http.StatusBadRequest)
			return
		}

		start := time.Now()
		sse := datastar.NewSSE(w, r)
		if err := f.Validate(ctx, model, property, NewSSESink(sse)); err != nil {
			f.logger.ErrorContext(ctx, "live validation failed",
				logger.Handler("validate"),
				logger.Property(property),
				logger.Duration(time.Since(start)),
				logger.Error(err),
			)
			return
		}

		f.logger.DebugContext(ctx, "live validation done",
			logger.Handler("validate"),
			logger.Property(property),
			logger.Duration(time.Since(start)),
		)
	}
}

// Submit validates the whole model and publishes the state of every bound
// field to sink, valid ones included so stale errors are cleared. A failed
// validation is returned as validator.ValidationErrors; any other error comes
// from the validator itself and nothing is published.
func (f *Form[T]) Submit(ctx context.Context, model T, sink Sink) error {
	publish := func(ctx context.Context, fld *formfield.Field) error {
		return sink.Publish(ctx, StateOf(fld))
	}
	registry, err := f.manifest.Build(f.coordinator.Bind(model), formfield.OnUpdate(publish))
	if err != nil {
		return err
	}

	err = f.coordinator.ValidateAll(ctx, model)
	if err != nil && !validator.IsValidationError(err) {
		return err
	}

	failures := validator.ExtractValidationErrors(err)
	for _, h := range registry.Handles() {
		fld, ok := h.(*formfield.Field)
		if !ok || fld.Path() == "" {
			continue
		}
		if perr := fld.SetMessages(ctx, failures.Get(fld.Path())); perr != nil {
			return errors.Join(perr, err)
		}
	}
	return err
}

// SubmitHandler returns an endpoint validating the full model read from the
// request signals. Field states are streamed back as datastar events and
// onValid runs only when every rule passes.
func (f *Form[T]) SubmitHandler(onValid func(ctx context.Context, model T, sse *datastar.ServerSentEventGenerator) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var model T
		if err := f.decode(r, &model); err != nil {
			f.logger.DebugContext(ctx, "failed to read signals", logger.Handler("submit"), logger.Error(err))
			http.Error(w, ErrInvalidSignals.Error(), http.StatusBadRequest)
			return
		}

		start := time.Now()
		sse := datastar.NewSSE(w, r)
		err := f.Submit(ctx, model, NewSSESink(sse))
		switch {
		case validator.IsValidationError(err):
			failures := validator.ExtractValidationErrors(err)
			f.logger.DebugContext(ctx, "submission rejected",
				logger.Handler("submit"),
				logger.Group("form",
					slog.Int("invalid", len(failures.Fields())),
					slog.Any("fields", failures.Fields()),
				),
				logger.Duration(time.Since(start)),
			)
			return
		case err != nil:
			f.logger.ErrorContext(ctx, "submission failed",
				logger.Handler("submit"),
				logger.Duration(time.Since(start)),
				logger.Error(err),
			)
			return
		}

		if onValid != nil {
			if err := onValid(ctx, model, sse); err != nil {
				f.logger.ErrorContext(ctx, "submission handler failed", logger.Handler("submit"), logger.Error(err))
				return
			}
		}
		f.logger.DebugContext(ctx, "submission accepted",
			logger.Handler("submit"),
			logger.Duration(time.Since(start)),
		)
	}
}
