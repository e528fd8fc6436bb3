// Package typecheck implements the type checker: it walks each
// ast.TopLevel, fills in every reachable ast.Expr's Ty field, and
// enforces the source language's type rules.
package typecheck

import (
	"github.com/hxyulin/redoxc/ast"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redoxc.typecheck'
func tracer() tracing.Trace {
	return tracing.Select("redoxc.typecheck")
}

// FunctionContext holds a function's declared signature for the duration
// of checking its body.
type FunctionContext struct {
	Arguments      []ast.Argument
	DeclaredReturn *ast.Type
}

// BlockContext maps a source-variable name to its declared type, seeded
// from the enclosing function's arguments.
type BlockContext struct {
	vars map[string]ast.Type
}

// NewBlockContext seeds a BlockContext from fc's arguments.
func NewBlockContext(fc FunctionContext) *BlockContext {
	bc := &BlockContext{vars: make(map[string]ast.Type, len(fc.Arguments))}
	for _, arg := range fc.Arguments {
		bc.vars[arg.Name] = arg.Ty
	}
	return bc
}

// Lookup resolves name to its declared type.
func (bc *BlockContext) Lookup(name string) (ast.Type, bool) {
	ty, ok := bc.vars[name]
	return ty, ok
}

// Check type-checks every top level in place. Only FunctionDef is legal
// at the top level; any other TopLevelKind is a parser bug and is
// asserted unreachable rather than reported as a user error.
func Check(tops []ast.TopLevel) error {
	for i := range tops {
		if err := checkTopLevel(&tops[i]); err != nil {
			return err
		}
	}
	return nil
}

func checkTopLevel(tl *ast.TopLevel) error {
	if tl.Kind.Expr == nil {
		panic("typecheck: top level with no Expr set")
	}
	expr := tl.Kind.Expr
	if expr.Kind.FunctionDef == nil {
		panic("typecheck: top-level expression is not a FunctionDef")
	}
	return checkFunctionDef(expr)
}

func checkFunctionDef(expr *ast.Expr) error {
	def := expr.Kind.FunctionDef
	tracer().Debugf("typecheck: entering function %q", def.Name)

	fc := FunctionContext{Arguments: def.Arguments, DeclaredReturn: def.ReturnTy}
	bc := NewBlockContext(fc)

	terminates, err := checkBlock(&def.Body, fc, bc)
	if err != nil {
		return err
	}

	if fc.DeclaredReturn == nil {
		return &Error{Kind: ErrUnableToInferType}
	}
	if !terminates && !fc.DeclaredReturn.IsUnit() {
		return &Error{
			Kind:     ErrIncompatibleTypes,
			Expected: fc.DeclaredReturn,
			Found:    unitTy(),
		}
	}

	unitType := ast.Unit()
	expr.Ty = &unitType
	return nil
}

// checkBlock types every statement in block in order and reports whether
// the block's straight-line execution terminates (i.e. some statement
// along the path is a Return).
func checkBlock(block *ast.Block, fc FunctionContext, bc *BlockContext) (bool, error) {
	terminates := false
	for i := range block.Statements {
		t, err := checkStatement(&block.Statements[i], fc, bc)
		if err != nil {
			return false, err
		}
		if t {
			terminates = true
		}
	}
	return terminates, nil
}

// checkStatement types a single statement expression, setting its Ty, and
// returns whether it terminates the enclosing block.
func checkStatement(expr *ast.Expr, fc FunctionContext, bc *BlockContext) (bool, error) {
	k := expr.Kind
	switch {
	case k.Literal != nil:
		ty := k.Literal.Ty()
		expr.Ty = &ty
		return false, nil

	case k.Variable != nil:
		name := *k.Variable
		ty, ok := bc.Lookup(name)
		if !ok {
			return false, &Error{Kind: ErrUnknownVariable, Name: name}
		}
		expr.Ty = &ty
		return false, nil

	case k.Return != nil:
		return checkReturn(expr, fc, bc)

	case k.FunctionDef != nil:
		panic("typecheck: nested FunctionDef expression")

	default:
		panic("typecheck: expression with no Kind variant set")
	}
}

func checkReturn(expr *ast.Expr, fc FunctionContext, bc *BlockContext) (bool, error) {
	ret := expr.Kind.Return

	if ret.Value == nil {
		if fc.DeclaredReturn != nil && !fc.DeclaredReturn.IsUnit() {
			return false, &Error{
				Kind:     ErrIncompatibleTypes,
				Expected: fc.DeclaredReturn,
				Found:    unitTy(),
			}
		}
		unitType := ast.Unit()
		expr.Ty = &unitType
		return true, nil
	}

	if _, err := checkStatement(ret.Value, fc, bc); err != nil {
		return false, err
	}
	unitType := ast.Unit()
	expr.Ty = &unitType
	return true, nil
}

func unitTy() *ast.Type {
	u := ast.Unit()
	return &u
}
