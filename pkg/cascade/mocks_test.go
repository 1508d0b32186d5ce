package cascade_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/formcascade/pkg/formfield"
	"github.com/dmitrymomot/formcascade/pkg/validator"
)

// MockHandle is a mock implementation of formfield.Handle.
type MockHandle struct {
	mock.Mock
	id      string
	binding formfield.Binding
}

func newMockHandle(id string, binding formfield.Binding) *MockHandle {
	return &MockHandle{id: id, binding: binding}
}

func (m *MockHandle) ID() string                 { return m.id }
func (m *MockHandle) Binding() formfield.Binding { return m.binding }

func (m *MockHandle) Revalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockValidator is a mock implementation of cascade.Validator.
type MockValidator[T any] struct {
	mock.Mock
}

func (m *MockValidator[T]) Validate(ctx context.Context, obj T, properties ...string) (validator.Result, error) {
	args := m.Called(ctx, obj, properties)
	return args.Get(0).(validator.Result), args.Error(1)
}

type staticRegistry []formfield.Handle

func (r staticRegistry) Handles() []formfield.Handle { return r }
