package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcascade/pkg/validator"
)

func TestExpr(t *testing.T) {
	t.Parallel()

	c, err := validator.Expr[booking]("Guests <= 10", "too many guests")
	require.NoError(t, err)
	assert.Equal(t, validator.KindExpression, c.Descriptor().Kind)
	_, ok := c.Descriptor().ComparisonTarget()
	assert.False(t, ok)

	verr, err := c.Validate(context.Background(), "Guests", booking{Guests: 11})
	require.NoError(t, err)
	require.NotNil(t, verr)
	assert.Equal(t, "too many guests", verr.Message)

	verr, err = c.Validate(context.Background(), "Guests", booking{Guests: 3})
	require.NoError(t, err)
	assert.Nil(t, verr)
}

func TestExprCompare(t *testing.T) {
	t.Parallel()

	c, err := validator.ExprCompare[booking]("Guests", "Children <= Guests", "children cannot outnumber guests")
	require.NoError(t, err)

	target, ok := c.Descriptor().ComparisonTarget()
	require.True(t, ok)
	assert.Equal(t, "Guests", target)

	verr, err := c.Validate(context.Background(), "Children", booking{Guests: 1, Children: 2})
	require.NoError(t, err)
	require.NotNil(t, verr)
	assert.Equal(t, "Children", verr.Field)
	assert.Equal(t, "Guests", verr.TranslationValues["other"])
}

func TestExpr_Errors(t *testing.T) {
	t.Parallel()

	_, err := validator.Expr[booking]("Unknown > 1", "x")
	assert.ErrorIs(t, err, validator.ErrExpressionCompile)

	_, err = validator.Expr[booking]("Guests + 1", "x")
	assert.ErrorIs(t, err, validator.ErrExpressionCompile, "non-boolean expressions are rejected at compile time")

	_, err = validator.ExprCompare[booking]("", "Children <= Guests", "x")
	assert.ErrorIs(t, err, validator.ErrInvalidComponent)

	assert.Panics(t, func() { validator.MustExpr[booking]("Guests >", "x") })
	assert.NotPanics(t, func() { validator.MustExprCompare[booking]("Guests", "Children <= Guests", "x") })
}
