package formfield_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcascade/pkg/formfield"
)

type Audit struct {
	CreatedBy string
}

type address struct {
	City string
	Zip  string
}

type bookingForm struct {
	Audit
	Start   time.Time
	End     time.Time
	Address address
	Owner   *address
	notes   string
}

func TestBind(t *testing.T) {
	t.Parallel()

	path, err := formfield.Bind("Address.City").Path()
	require.NoError(t, err)
	assert.Equal(t, "Address.City", path)

	_, err = formfield.Bind("").Path()
	assert.ErrorIs(t, err, formfield.ErrEmptyPath)
}

func TestBindField(t *testing.T) {
	t.Parallel()

	form := &bookingForm{Owner: &address{}}

	tests := []struct {
		name    string
		field   any
		want    string
		wantErr error
	}{
		{name: "top level", field: &form.Start, want: "Start"},
		{name: "second top level", field: &form.End, want: "End"},
		{name: "nested struct", field: &form.Address, want: "Address"},
		{name: "nested member", field: &form.Address.City, want: "Address.City"},
		{name: "nested second member", field: &form.Address.Zip, want: "Address.Zip"},
		{name: "promoted member", field: &form.CreatedBy, want: "CreatedBy"},
		{name: "unexported member", field: &form.notes, wantErr: formfield.ErrFieldNotFound},
		{name: "behind pointer", field: &form.Owner.City, wantErr: formfield.ErrFieldNotFound},
		{name: "foreign pointer", field: new(string), wantErr: formfield.ErrFieldNotFound},
		{name: "non pointer", field: "Start", wantErr: formfield.ErrNotPointer},
		{name: "nil field", field: nil, wantErr: formfield.ErrNotPointer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := formfield.BindField(form, tt.field).Path()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var pathErr *formfield.PathError
				assert.ErrorAs(t, err, &pathErr)
				assert.Empty(t, path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
		})
	}
}

func TestBindField_InvalidModel(t *testing.T) {
	t.Parallel()

	form := bookingForm{}
	_, err := formfield.BindField(form, &form.Start).Path()
	assert.ErrorIs(t, err, formfield.ErrNotPointer)

	n := 3
	_, err = formfield.BindField(&n, &n).Path()
	assert.ErrorIs(t, err, formfield.ErrNotStruct)

	var nilForm *bookingForm
	_, err = formfield.BindField(nilForm, new(string)).Path()
	assert.ErrorIs(t, err, formfield.ErrNotPointer)
}

func TestBindField_ZeroSizedMembers(t *testing.T) {
	t.Parallel()

	type flags struct {
		A, B struct{}
		C    int
	}
	m := &flags{}

	_, err := formfield.BindField(m, &m.B).Path()
	var pathErr *formfield.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.ErrorIs(t, err, formfield.ErrZeroSizeField)

	_, err = formfield.BindField(m, &m.A).Path()
	assert.ErrorIs(t, err, formfield.ErrZeroSizeField)

	path, err := formfield.BindField(m, &m.C).Path()
	require.NoError(t, err)
	assert.Equal(t, "C", path, "a sized member sharing an address with a zero-sized one still resolves")
}
