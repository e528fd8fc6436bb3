package ast

import (
	"testing"

	"github.com/hxyulin/redoxc/lexer"
	"github.com/stretchr/testify/require"
)

func TestUnitIsUnit(t *testing.T) {
	require.True(t, Unit().IsUnit())
	require.True(t, TupleType().IsUnit())
	require.False(t, NumberTypeOf(lexer.I32).IsUnit())
}

func TestLookupNamedType(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"i32", NumberTypeOf(lexer.I32)},
		{"i64", NumberTypeOf(lexer.I64)},
		{"u32", NumberTypeOf(lexer.U32)},
		{"u64", NumberTypeOf(lexer.U64)},
		{"f32", NumberTypeOf(lexer.F32)},
		{"f64", NumberTypeOf(lexer.F64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupNamedType(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	_, ok := LookupNamedType("struct")
	require.False(t, ok)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "()", Unit().String())
	require.Equal(t, "i32", NumberTypeOf(lexer.I32).String())
	require.Equal(t, "u64", NumberTypeOf(lexer.U64).String())
}
