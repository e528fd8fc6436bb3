package parser

import (
	"testing"

	"github.com/hxyulin/redoxc/ast"
	"github.com/hxyulin/redoxc/lexer"
	"github.com/stretchr/testify/require"
)

func TestParseEmptySourceIsEmptyList(t *testing.T) {
	tls, err := Parse("")
	require.NoError(t, err)
	require.Empty(t, tls)
}

func TestParseEmptyFunction(t *testing.T) {
	tls, err := Parse("fn foo() {}")
	require.NoError(t, err)
	require.Len(t, tls, 1)

	def := tls[0].Kind.Expr.Kind.FunctionDef
	require.NotNil(t, def)
	require.Equal(t, "foo", def.Name)
	require.Empty(t, def.Arguments)
	require.Nil(t, def.ReturnTy)
	require.Empty(t, def.Body.Statements)
}

func TestParseMainReturningI32Literal(t *testing.T) {
	tls, err := Parse("fn main() -> i32 { return 0; }")
	require.NoError(t, err)
	require.Len(t, tls, 1)

	def := tls[0].Kind.Expr.Kind.FunctionDef
	require.Equal(t, "main", def.Name)
	require.NotNil(t, def.ReturnTy)
	require.True(t, def.ReturnTy.IsNumber())
	require.Len(t, def.Body.Statements, 1)

	ret := def.Body.Statements[0].Kind.Return
	require.NotNil(t, ret)
	require.NotNil(t, ret.Value)

	lit := ret.Value.Kind.Literal
	require.NotNil(t, lit)
	require.NotNil(t, lit.Number)
	require.Equal(t, uint64(0), lit.Number.Value)
}

func TestParseFunctionWithTypedArgument(t *testing.T) {
	tls, err := Parse("fn add(x: i32) -> i32 { return x; }")
	require.NoError(t, err)
	require.Len(t, tls, 1)

	def := tls[0].Kind.Expr.Kind.FunctionDef
	require.Len(t, def.Arguments, 1)
	require.Equal(t, "x", def.Arguments[0].Name)
	require.True(t, def.Arguments[0].Ty.IsNumber())

	ret := def.Body.Statements[0].Kind.Return
	require.NotNil(t, ret.Value)
	require.NotNil(t, ret.Value.Kind.Variable)
	require.Equal(t, "x", *ret.Value.Kind.Variable)
}

func TestParseMultipleTypedArguments(t *testing.T) {
	tls, err := Parse("fn add(x: i32, y: i32) -> i32 { return x; }")
	require.NoError(t, err)
	def := tls[0].Kind.Expr.Kind.FunctionDef
	require.Len(t, def.Arguments, 2)
	require.Equal(t, "x", def.Arguments[0].Name)
	require.Equal(t, "y", def.Arguments[1].Name)
}

func TestParseUnitReturnType(t *testing.T) {
	tls, err := Parse("fn foo() -> () { return; }")
	require.NoError(t, err)
	def := tls[0].Kind.Expr.Kind.FunctionDef
	require.NotNil(t, def.ReturnTy)
	require.True(t, def.ReturnTy.IsUnit())

	ret := def.Body.Statements[0].Kind.Return
	require.NotNil(t, ret)
	require.Nil(t, ret.Value)
}

func TestParseMultipleTopLevels(t *testing.T) {
	tls, err := Parse("fn a() {} fn b() {}")
	require.NoError(t, err)
	require.Len(t, tls, 2)
}

func TestParseMissingColonInArgIsUnexpectedToken(t *testing.T) {
	_, err := Parse("fn foo(x i32) {}")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotNil(t, parseErr.UnexpectedToken)
	require.Equal(t, lexer.Ident, parseErr.UnexpectedToken.Kind)
	require.Equal(t, "i32", parseErr.UnexpectedToken.Ident)
}

func TestParseUnterminatedBlockIsUnexpectedEOF(t *testing.T) {
	_, err := Parse("fn foo() {")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, parseErr.UnexpectedEOF)
}

func TestParseTopLevelNotFnIsUnexpectedToken(t *testing.T) {
	_, err := Parse("42")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotNil(t, parseErr.UnexpectedToken)
	require.Equal(t, lexer.Number, parseErr.UnexpectedToken.Kind)
}

func TestParseSkipsBlockCommentsBetweenTokens(t *testing.T) {
	tls, err := Parse("fn /* entry point */ main() -> i32 { return 0; }")
	require.NoError(t, err)
	require.Len(t, tls, 1)
	require.Equal(t, "main", tls[0].Kind.Expr.Kind.FunctionDef.Name)
}

func TestParseSpansCoverFullFunctionDef(t *testing.T) {
	src := "fn foo() {}"
	tls, err := Parse(src)
	require.NoError(t, err)
	span := tls[0].Span
	require.Equal(t, 0, span.Start)
	require.Equal(t, len(src), span.End)
}

// sanity: parsed function defs round-trip through ast.TopLevelFromExpr.
func TestParseTopLevelWrapsFunctionDefExpr(t *testing.T) {
	tls, err := Parse("fn foo() {}")
	require.NoError(t, err)
	require.IsType(t, ast.TopLevel{}, tls[0])
	require.NotNil(t, tls[0].Kind.Expr)
}
