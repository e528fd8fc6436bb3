package irgen_test

import (
	"testing"

	"github.com/hxyulin/redoxc/irgen"
	"github.com/hxyulin/redoxc/parser"
	"github.com/hxyulin/redoxc/typecheck"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	tops, err := parser.Parse(src)
	require.NoError(t, err)
	require.NoError(t, typecheck.Check(tops))

	m, err := irgen.Generate(irgen.ModuleName{Name: "main"}, tops)
	require.NoError(t, err)
	return m.String()
}

func TestGenerate_ReturnImmediate(t *testing.T) {
	got := compile(t, "fn main() -> i32 { return 0; }")
	want := "module main\nfn i32 main () {\n@0:\n    return i32 0i32\n}\n"
	require.Equal(t, want, got)
}

func TestGenerate_ReturnArgument(t *testing.T) {
	got := compile(t, "fn add(x: i32) -> i32 { return x; }")
	want := "module main\nfn i32 add (%0: i32) {\n@0:\n    return i32 %0\n}\n"
	require.Equal(t, want, got)
}

func TestGenerate_VoidReturn(t *testing.T) {
	got := compile(t, "fn noop() -> () { return; }")
	want := "module main\nfn void noop () {\n@0:\n    return void\n}\n"
	require.Equal(t, want, got)
}

func TestGenerate_BareExprStatementPanics(t *testing.T) {
	tops, err := parser.Parse("fn foo() -> i32 { 0; return 0; }")
	require.NoError(t, err)
	require.NoError(t, typecheck.Check(tops))

	require.Panics(t, func() {
		_, _ = irgen.Generate(irgen.ModuleName{Name: "main"}, tops)
	})
}
