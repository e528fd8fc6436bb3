// Package ast defines the shared, span-wrapped data model between the
// parser, the type checker, and the IR generator.
package ast

import "github.com/hxyulin/redoxc/lexer"

// Wrapped attaches a byte span and an optional type to a node kind. Ty is
// nil until the type checker fills it in for each expression it checks.
type Wrapped[T any] struct {
	Kind T
	Span lexer.Span
	Ty   *Type
}

// NewWrapped builds a Wrapped node with no type yet assigned.
func NewWrapped[T any](kind T, span lexer.Span) Wrapped[T] {
	return Wrapped[T]{Kind: kind, Span: span}
}

// Expr is an expression node: a literal, a variable reference, a return,
// or (only at the top level) a function definition.
type Expr = Wrapped[ExprKind]

// ExprKind is the sum of expression forms.
type ExprKind struct {
	Literal     *Literal
	Variable    *string
	Return      *ReturnExpr
	FunctionDef *FunctionDef
}

// ReturnExpr is `return` with an optional inner expression.
type ReturnExpr struct {
	Value *Expr
}

// LiteralExpr builds an ExprKind wrapping a literal.
func LiteralExpr(lit Literal) ExprKind { return ExprKind{Literal: &lit} }

// VariableExpr builds an ExprKind wrapping a variable reference.
func VariableExpr(name string) ExprKind { return ExprKind{Variable: &name} }

// ReturnExprKind builds an ExprKind wrapping a return, optionally with an
// inner expression.
func ReturnExprKind(inner *Expr) ExprKind { return ExprKind{Return: &ReturnExpr{Value: inner}} }

// FunctionDefExpr builds an ExprKind wrapping a function definition.
func FunctionDefExpr(def FunctionDef) ExprKind { return ExprKind{FunctionDef: &def} }

// TopLevel wraps a TopLevelKind; it always wraps a FunctionDef expression
// in practice, since the parser rejects any other kind at the top level.
type TopLevel = Wrapped[TopLevelKind]

// TopLevelKind is the sum of top-level forms. Only Expr exists today.
type TopLevelKind struct {
	Expr *Expr
}

// TopLevelFromExpr wraps expr as a top level, reusing its span.
func TopLevelFromExpr(expr Expr) TopLevel {
	return TopLevel{Kind: TopLevelKind{Expr: &expr}, Span: expr.Span}
}

// Attribute is reserved for future use; no attribute kinds exist yet.
type Attribute struct{}

// FunctionDef is a function definition: its name, arguments, optional
// declared return type, attributes, and body.
type FunctionDef struct {
	Name      string
	Arguments []Argument
	ReturnTy  *Type
	Attrs     []Attribute
	Body      Block
}

// Argument is one (name, type) pair in a function's parameter list.
type Argument struct {
	Name string
	Ty   Type
}

// Block is an ordered sequence of statements (each itself an Expr).
type Block struct {
	Statements []Expr
	Attrs      []Attribute
}

// EmptyBlock returns a Block with no statements.
func EmptyBlock() Block {
	return Block{Statements: []Expr{}}
}

// Literal is the sum of literal forms; only numbers exist today.
type Literal struct {
	Number *lexer.NumberLiteral
}

// NumberLiteralOf builds a Literal wrapping a numeric literal.
func NumberLiteralOf(n lexer.NumberLiteral) Literal {
	return Literal{Number: &n}
}

// Ty returns the static type of a literal.
func (l Literal) Ty() Type {
	if l.Number != nil {
		return NumberTypeOf(l.Number.Kind)
	}
	panic("ast: literal with no variant set")
}
