package ast

import (
	"fmt"

	"github.com/hxyulin/redoxc/lexer"
)

// Type is the source language's type grammar: either a tuple (the empty
// tuple is the unit/void type) or a number type.
type Type struct {
	Tuple  []Type
	Number *lexer.NumberType
}

// TupleType builds a Type wrapping elems as a tuple. TupleType() with no
// arguments is the unit type.
func TupleType(elems ...Type) Type {
	if elems == nil {
		elems = []Type{}
	}
	return Type{Tuple: elems}
}

// NumberTypeOf builds a Type wrapping a number type.
func NumberTypeOf(n lexer.NumberType) Type {
	return Type{Number: &n}
}

// Unit is the empty-tuple type.
func Unit() Type { return TupleType() }

// IsUnit reports whether t is the empty tuple (void) type.
func (t Type) IsUnit() bool {
	return t.Number == nil && len(t.Tuple) == 0
}

// IsTuple reports whether t is a tuple type (including the unit type).
func (t Type) IsTuple() bool {
	return t.Number == nil
}

// IsNumber reports whether t is a number type.
func (t Type) IsNumber() bool {
	return t.Number != nil
}

func (t Type) String() string {
	if t.Number != nil {
		var prefix string
		switch t.Number.Kind {
		case lexer.Signed:
			prefix = "i"
		case lexer.Unsigned:
			prefix = "u"
		case lexer.Float:
			prefix = "f"
		}
		return fmt.Sprintf("%s%d", prefix, t.Number.Bits)
	}
	if len(t.Tuple) == 0 {
		return "()"
	}
	s := "("
	for i, e := range t.Tuple {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}

// namedTypes maps each primitive type name to its Type.
var namedTypes = map[string]Type{
	"i32": NumberTypeOf(lexer.I32),
	"i64": NumberTypeOf(lexer.I64),
	"u32": NumberTypeOf(lexer.U32),
	"u64": NumberTypeOf(lexer.U64),
	"f32": NumberTypeOf(lexer.F32),
	"f64": NumberTypeOf(lexer.F64),
}

// LookupNamedType resolves a type name (e.g. "i32") to its Type. The unit
// type "()" is not looked up by name; it is parsed as a distinct grammar
// alternative.
func LookupNamedType(name string) (Type, bool) {
	t, ok := namedTypes[name]
	return t, ok
}
