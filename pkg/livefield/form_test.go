package livefield_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcascade/pkg/cascade"
	"github.com/dmitrymomot/formcascade/pkg/formfield"
	"github.com/dmitrymomot/formcascade/pkg/livefield"
	"github.com/dmitrymomot/formcascade/pkg/validator"
)

type stay struct {
	Start    time.Time `json:"Start"`
	End      time.Time `json:"End"`
	Guests   int       `json:"Guests"`
	Children int       `json:"Children"`
}

var day0 = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

const stayManifest = `
fields:
  - id: start
    path: Start
    label: Check-in
  - id: end
    path: End
    label: Check-out
  - id: guests
    path: Guests
  - id: children
    path: Children
  - id: notes
`

func newStayForm(t *testing.T, opts ...cascade.Option) *livefield.Form[stay] {
	t.Helper()

	rules := validator.NewRuleSet[stay]().
		For("Start", validator.Required(func(s stay) time.Time { return s.Start })).
		For("End",
			validator.Required(func(s stay) time.Time { return s.End }),
			validator.AfterOrEqualField("Start",
				func(s stay) time.Time { return s.End },
				func(s stay) time.Time { return s.Start }),
		).
		For("Guests", validator.Min(func(s stay) int { return s.Guests }, 1)).
		For("Children", validator.LessThanOrEqualField("Guests",
			func(s stay) int { return s.Children },
			func(s stay) int { return s.Guests }))

	manifest, err := formfield.LoadManifest(strings.NewReader(stayManifest))
	require.NoError(t, err)

	return livefield.NewForm(manifest, cascade.New[stay](rules, rules, opts...))
}

type recorder struct {
	states []livefield.State
	fail   error
}

func (r *recorder) Publish(_ context.Context, s livefield.State) error {
	if r.fail != nil {
		return r.fail
	}
	r.states = append(r.states, s)
	return nil
}

func TestForm_Validate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("publishes dependents before the changed field", func(t *testing.T) {
		t.Parallel()

		form := newStayForm(t)
		rec := &recorder{}
		model := stay{Start: day0, End: day0.AddDate(0, 0, -1)}

		require.NoError(t, form.Validate(ctx, model, "Start", rec))
		require.Len(t, rec.states, 2)

		assert.Equal(t, "end", rec.states[0].FieldID)
		assert.Equal(t, "End", rec.states[0].Path)
		assert.Equal(t, []string{"must be on or after Start"}, rec.states[0].Messages)

		assert.Equal(t, "start", rec.states[1].FieldID)
		assert.True(t, rec.states[1].Valid())
	})

	t.Run("field without dependents publishes only itself", func(t *testing.T) {
		t.Parallel()

		form := newStayForm(t)
		rec := &recorder{}

		require.NoError(t, form.Validate(ctx, stay{Guests: 2, Children: 3}, "Children", rec))
		require.Len(t, rec.states, 1)
		assert.Equal(t, []string{"must be less than or equal to Guests"}, rec.states[0].Messages)
	})

	t.Run("unknown and unbound properties are rejected", func(t *testing.T) {
		t.Parallel()

		form := newStayForm(t)
		rec := &recorder{}

		assert.ErrorIs(t, form.Validate(ctx, stay{}, "Nope", rec), livefield.ErrUnknownProperty)
		assert.ErrorIs(t, form.Validate(ctx, stay{}, "", rec), livefield.ErrUnknownProperty)
		assert.Empty(t, rec.states)
		assert.False(t, form.Knows("notes"))
		assert.True(t, form.Knows("Guests"))
	})

	t.Run("sink failure aborts the cascade", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("stream closed")
		form := newStayForm(t)
		rec := &recorder{fail: boom}

		err := form.Validate(ctx, stay{Guests: 1}, "Guests", rec)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("continue policy still publishes the changed field", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("stream closed")
		form := newStayForm(t, cascade.WithPolicy(cascade.ContinueOnError))

		var states []livefield.State
		sink := livefield.SinkFunc(func(_ context.Context, s livefield.State) error {
			if s.FieldID == "children" {
				return boom
			}
			states = append(states, s)
			return nil
		})

		err := form.Validate(ctx, stay{}, "Guests", sink)
		var cascadeErr *cascade.CascadeError
		require.ErrorAs(t, err, &cascadeErr)
		assert.ErrorIs(t, err, boom)

		require.Len(t, states, 1)
		assert.Equal(t, "guests", states[0].FieldID)
		assert.Equal(t, []string{"must be at least 1"}, states[0].Messages)
	})
}

func newStayRouter(t *testing.T) http.Handler {
	t.Helper()

	form := newStayForm(t)
	r := chi.NewRouter()
	r.Post("/validate/{property}", form.Handler(func(r *http.Request) string {
		return chi.URLParam(r, "property")
	}))
	return r
}

func TestForm_Handler(t *testing.T) {
	t.Parallel()

	t.Run("streams field states", func(t *testing.T) {
		t.Parallel()

		body := `{"Start":"2030-06-01T00:00:00Z","End":"2030-05-31T00:00:00Z","errors":{}}`
		req := httptest.NewRequest(http.MethodPost, "/validate/Start", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()

		newStayRouter(t).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

		out := rec.Body.String()
		assert.Contains(t, out, "datastar-patch-signals")
		assert.Contains(t, out, "datastar-patch-elements")
		assert.Contains(t, out, "#errors-End")
		assert.Contains(t, out, "must be on or after Start")
		assert.Contains(t, out, "#errors-Start")
		assert.Less(t, strings.Index(out, "#errors-End"), strings.Index(out, "#errors-Start"))
	})

	t.Run("unknown property is not found", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/validate/Nope", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newStayRouter(t).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed signals are rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/validate/Start", strings.NewReader(`{"Start":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newStayRouter(t).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

type failingValidator struct{ err error }

func (v failingValidator) Validate(context.Context, stay, ...string) (validator.Result, error) {
	return validator.Result{}, v.err
}

func TestForm_Submit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid model clears every bound field", func(t *testing.T) {
		t.Parallel()

		form := newStayForm(t)
		rec := &recorder{}
		model := stay{Start: day0, End: day0.AddDate(0, 0, 2), Guests: 2, Children: 1}

		require.NoError(t, form.Submit(ctx, model, rec))
		require.Len(t, rec.states, 4)

		ids := make([]string, 0, len(rec.states))
		for _, s := range rec.states {
			ids = append(ids, s.FieldID)
			assert.True(t, s.Valid(), s.FieldID)
		}
		assert.Equal(t, []string{"start", "end", "guests", "children"}, ids)
	})

	t.Run("invalid model publishes failures per field", func(t *testing.T) {
		t.Parallel()

		form := newStayForm(t)
		rec := &recorder{}

		err := form.Submit(ctx, stay{Guests: 2, Children: 3}, rec)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.ElementsMatch(t, []string{"Start", "End", "Children"}, validator.ExtractValidationErrors(err).Fields())

		require.Len(t, rec.states, 4)
		byID := make(map[string]livefield.State, len(rec.states))
		for _, s := range rec.states {
			byID[s.FieldID] = s
		}
		assert.Equal(t, []string{"field is required"}, byID["start"].Messages)
		assert.Contains(t, byID["end"].Messages, "field is required")
		assert.True(t, byID["guests"].Valid())
		assert.Equal(t, []string{"must be less than or equal to Guests"}, byID["children"].Messages)
	})

	t.Run("validator failure publishes nothing", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("engine down")
		manifest, err := formfield.LoadManifest(strings.NewReader(stayManifest))
		require.NoError(t, err)

		form := livefield.NewForm(manifest, cascade.New[stay](failingValidator{err: boom}, validator.NewRuleSet[stay]()))

		rec := &recorder{}
		assert.Same(t, boom, form.Submit(ctx, stay{}, rec))
		assert.False(t, validator.IsValidationError(boom))
		assert.Empty(t, rec.states)
	})

	t.Run("sink failure is returned", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("stream closed")
		form := newStayForm(t)

		err := form.Submit(ctx, stay{}, &recorder{fail: boom})
		assert.ErrorIs(t, err, boom)
	})
}

func TestForm_SubmitHandler(t *testing.T) {
	t.Parallel()

	newRouter := func(t *testing.T, log *slog.Logger, accepted *bool) http.Handler {
		t.Helper()

		form := newStayForm(t)
		if log != nil {
			manifest := form.Manifest()
			rules := validator.NewRuleSet[stay]().
				For("Start", validator.Required(func(s stay) time.Time { return s.Start })).
				For("Guests", validator.Min(func(s stay) int { return s.Guests }, 1))
			form = livefield.NewForm(manifest, cascade.New[stay](rules, rules), livefield.WithFormLogger[stay](log))
		}

		r := chi.NewRouter()
		r.Post("/submit", form.SubmitHandler(func(_ context.Context, _ stay, sse *datastar.ServerSentEventGenerator) error {
			*accepted = true
			return sse.PatchSignals([]byte(`{"submitted":true}`))
		}))
		return r
	}

	post := func(h http.Handler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid submission runs the callback", func(t *testing.T) {
		t.Parallel()

		var accepted bool
		body := `{"Start":"2030-06-01T00:00:00Z","End":"2030-06-03T00:00:00Z","Guests":2,"Children":0}`
		rec := post(newRouter(t, nil, &accepted), body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, accepted)
		assert.Contains(t, rec.Body.String(), "submitted")
		assert.Contains(t, rec.Body.String(), "#errors-Children")
	})

	t.Run("invalid submission streams errors and is logged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		var accepted bool
		rec := post(newRouter(t, log, &accepted), `{"Guests":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, accepted)
		assert.Contains(t, rec.Body.String(), "field is required")
		assert.Contains(t, rec.Body.String(), "must be at least 1")

		out := buf.String()
		assert.Contains(t, out, "submission rejected")
		assert.Contains(t, out, "handler=submit")
		assert.Contains(t, out, "form.invalid=2")
	})

	t.Run("malformed signals are rejected", func(t *testing.T) {
		t.Parallel()

		var accepted bool
		rec := post(newRouter(t, nil, &accepted), `{"Guests":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, accepted)
	})
}
