package validator

import (
	"context"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprComponent evaluates a boolean expr-lang program against the object.
// The program compiles against T, so expressions reference exported fields
// directly: `Children <= Guests`.
type exprComponent[T any] struct {
	desc    Descriptor
	program *vm.Program
	message string
}

// Expr compiles an expression that must evaluate to true for the property to
// be valid. Compilation happens once, at rule declaration time.
func Expr[T any](expression, message string) (Component[T], error) {
	return compileExpr[T](Descriptor{Kind: KindExpression, Name: "expression"}, expression, message)
}

// ExprCompare is Expr for expressions that compare the bound property against
// another one. The member to compare is declared explicitly so the component
// takes part in dependent-field discovery.
func ExprCompare[T any](other, expression, message string) (Component[T], error) {
	if other == "" {
		return nil, fmt.Errorf("%w: expression comparison needs a member to compare", ErrInvalidComponent)
	}
	return compileExpr[T](Descriptor{Kind: KindComparison, Name: "expression", CompareTo: other}, expression, message)
}

// MustExpr is like Expr but panics on compile errors. Intended for package-level rule sets.
func MustExpr[T any](expression, message string) Component[T] {
	c, err := Expr[T](expression, message)
	if err != nil {
		panic(err)
	}
	return c
}

// MustExprCompare is like ExprCompare but panics on compile errors.
func MustExprCompare[T any](other, expression, message string) Component[T] {
	c, err := ExprCompare[T](other, expression, message)
	if err != nil {
		panic(err)
	}
	return c
}

func compileExpr[T any](desc Descriptor, expression, message string) (Component[T], error) {
	var env T
	prog, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrExpressionCompile, expression, err)
	}
	return exprComponent[T]{desc: desc, program: prog, message: message}, nil
}

func (e exprComponent[T]) Descriptor() Descriptor { return e.desc }

func (e exprComponent[T]) Validate(_ context.Context, property string, obj T) (*ValidationError, error) {
	out, err := expr.Run(e.program, obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrExpressionRun, property, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return nil, fmt.Errorf("%w: %s: expression returned %T", ErrExpressionRun, property, out)
	}
	if ok {
		return nil, nil
	}
	values := map[string]any{}
	if e.desc.CompareTo != "" {
		values["other"] = e.desc.CompareTo
	}
	verr := fieldError(property, e.message, "validation.expression", values)
	return &verr, nil
}
