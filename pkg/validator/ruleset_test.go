package validator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcascade/pkg/validator"
)

type address struct {
	City string
	Zip  string
}

type booking struct {
	Start    time.Time
	End      time.Time
	Guests   int
	Children int
	Email    string
	Address  address
}

func bookingStart(b booking) time.Time { return b.Start }
func bookingEnd(b booking) time.Time   { return b.End }

func bookingRules() *validator.RuleSet[booking] {
	return validator.NewRuleSet[booking]().
		For("Start", validator.Required(bookingStart)).
		For("End",
			validator.Required(bookingEnd),
			validator.AfterOrEqualField("Start", bookingEnd, bookingStart),
		).
		For("Guests",
			validator.Min(func(b booking) int { return b.Guests }, 1),
			validator.Max(func(b booking) int { return b.Guests }, 10),
		).
		For("Address.City", validator.NotEmpty(func(b booking) string { return b.Address.City })).
		For("Address.Zip", validator.Length(func(b booking) string { return b.Address.Zip }, 5))
}

func TestRuleSet_Validate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	valid := booking{
		Start:   start,
		End:     start.Add(48 * time.Hour),
		Guests:  2,
		Address: address{City: "Lisbon", Zip: "10000"},
	}

	t.Run("valid object has no errors", func(t *testing.T) {
		t.Parallel()
		res, err := bookingRules().Validate(ctx, valid)
		require.NoError(t, err)
		assert.True(t, res.IsValid())
		assert.Empty(t, res.Messages())
		assert.NotNil(t, res.Messages())
		assert.NoError(t, res.Err())
	})

	t.Run("scopes to a single property", func(t *testing.T) {
		t.Parallel()
		b := valid
		b.End = start.Add(-time.Hour)
		b.Guests = 0

		res, err := bookingRules().Validate(ctx, b, "End")
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		assert.Equal(t, []string{"must be on or after Start"}, res.Messages())
		assert.Equal(t, []string{"End"}, res.Errors.Fields())
		assert.ErrorIs(t, res.Err(), validator.ErrValidationFailed)
	})

	t.Run("reports messages in declaration order", func(t *testing.T) {
		t.Parallel()
		b := valid
		b.Guests = 11

		res, err := bookingRules().Validate(ctx, b, "Guests")
		require.NoError(t, err)
		assert.Equal(t, []string{"must be at most 10"}, res.Messages())

		b.End = time.Time{}
		res, err = bookingRules().Validate(ctx, b, "End")
		require.NoError(t, err)
		assert.Equal(t, []string{"field is required", "must be on or after Start"}, res.Messages())
	})

	t.Run("parent property includes nested rules", func(t *testing.T) {
		t.Parallel()
		b := valid
		b.Address = address{}

		res, err := bookingRules().Validate(ctx, b, "Address")
		require.NoError(t, err)
		assert.Equal(t, []string{"Address.City", "Address.Zip"}, res.Errors.Fields())
	})

	t.Run("property matching is exact", func(t *testing.T) {
		t.Parallel()
		b := valid
		b.Guests = 0

		res, err := bookingRules().Validate(ctx, b, "guests")
		require.NoError(t, err)
		assert.True(t, res.IsValid())

		res, err = bookingRules().Validate(ctx, b, "Guest")
		require.NoError(t, err)
		assert.True(t, res.IsValid(), "prefix without a dot separator must not match")
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		b := valid
		b.End = start.Add(-time.Hour)
		rules := bookingRules()

		first, err := rules.Validate(ctx, b, "End")
		require.NoError(t, err)
		second, err := rules.Validate(ctx, b, "End")
		require.NoError(t, err)
		assert.Equal(t, first.Messages(), second.Messages())
	})
}

func TestRuleSet_StopOnFailure(t *testing.T) {
	t.Parallel()

	rules := validator.NewRuleSet[booking]().
		ForStop("Email",
			validator.NotEmpty(func(b booking) string { return b.Email }),
			validator.Email(func(b booking) string { return b.Email }),
		)

	res, err := rules.Validate(context.Background(), booking{}, "Email")
	require.NoError(t, err)
	assert.Equal(t, []string{"field is required"}, res.Messages())
}

func TestRuleSet_Describe(t *testing.T) {
	t.Parallel()

	descs := bookingRules().Describe()
	require.Len(t, descs, 5)

	assert.Equal(t, "End", descs[1].Property)
	require.Len(t, descs[1].Components, 2)
	assert.Equal(t, validator.KindPredicate, descs[1].Components[0].Kind)

	target, ok := descs[1].Components[1].ComparisonTarget()
	require.True(t, ok)
	assert.Equal(t, "Start", target)

	_, ok = descs[0].Components[0].ComparisonTarget()
	assert.False(t, ok)
}

func TestRuleSet_Rules(t *testing.T) {
	t.Parallel()

	rules := bookingRules()
	got := rules.Rules()
	require.Len(t, got, 5)
	got[0].Property = "mutated"
	assert.Equal(t, "Start", rules.Rules()[0].Property, "Rules returns a copy")
}

func TestRuleSet_InvalidDeclaration(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		validator.NewRuleSet[booking]().For("", validator.Required(bookingStart))
	})
	assert.Panics(t, func() {
		validator.NewRuleSet[booking]().For("Start", nil)
	})
}

type failingComponent struct{ err error }

func (f failingComponent) Descriptor() validator.Descriptor {
	return validator.Descriptor{Kind: validator.KindPredicate, Name: "failing"}
}

func (f failingComponent) Validate(context.Context, string, booking) (*validator.ValidationError, error) {
	return nil, f.err
}

func TestRuleSet_ComponentError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rules := validator.NewRuleSet[booking]().For("Start", failingComponent{err: boom})

	_, err := rules.Validate(context.Background(), booking{}, "Start")
	assert.ErrorIs(t, err, boom)
}
