package livefield

import (
	"context"
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formcascade/pkg/formfield"
)

// State is the displayed error state of one field.
type State struct {
	FieldID  string
	Path     string
	Messages []string
}

// Valid reports whether the field has no messages.
func (s State) Valid() bool { return len(s.Messages) == 0 }

// key identifies the field on the client: its path, or its id when unbound.
func (s State) key() string {
	if s.Path != "" {
		return s.Path
	}
	return s.FieldID
}

// StateOf captures the current state of a field.
func StateOf(f *formfield.Field) State {
	return State{FieldID: f.ID(), Path: f.Path(), Messages: f.Messages()}
}

// Sink receives field state changes.
type Sink interface {
	Publish(ctx context.Context, state State) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, state State) error

func (f SinkFunc) Publish(ctx context.Context, state State) error { return f(ctx, state) }

// SSESink pushes field states to a datastar client. Each state patches the
// errors.<key> signal and morphs the field's error list element.
type SSESink struct {
	sse *datastar.ServerSentEventGenerator
}

func NewSSESink(sse *datastar.ServerSentEventGenerator) *SSESink {
	return &SSESink{sse: sse}
}

func (s *SSESink) Publish(ctx context.Context, state State) error {
	if s == nil || s.sse == nil {
		return ErrSSENotInitialized
	}

	messages := state.Messages
	if messages == nil {
		messages = []string{}
	}
	data, err := json.Marshal(map[string]any{
		"errors": map[string]any{SignalKey(state.key()): messages},
	})
	if err != nil {
		return err
	}
	if err := s.sse.PatchSignals(data); err != nil {
		return err
	}
	return s.sse.PatchElementTempl(ErrorList(state), datastar.WithSelector("#"+ErrorListID(state.key())))
}
