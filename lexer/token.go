// Package lexer converts source text into a stream of tokens with byte spans.
package lexer

import "fmt"

// Kind identifies the variant of a Token, independent of any payload it
// carries (identifier text, number value). Grammar matching dispatches on
// Kind alone.
type Kind int

const (
	// KwFn is the 'fn' keyword.
	KwFn Kind = iota
	// KwReturn is the 'return' keyword.
	KwReturn
	// Semicolon is ';'.
	Semicolon
	// Colon is ':'.
	Colon
	// Comma is ','.
	Comma
	// LeftParen is '('.
	LeftParen
	// RightParen is ')'.
	RightParen
	// LeftBrace is '{'.
	LeftBrace
	// RightBrace is '}'.
	RightBrace
	// Arrow is '->'.
	Arrow
	// Ident is an identifier, carrying its text in Token.Ident.
	Ident
	// Number is a numeric literal, carrying its value in Token.NumberLit.
	Number
	// OpenComment is '/*'. Never surfaces past the parser helper.
	OpenComment
	// CloseComment is '*/'. The parser helper consumes it when it closes a
	// comment; a '*/' with no opening '/*' is passed on to the parser.
	CloseComment
)

func (k Kind) String() string {
	switch k {
	case KwFn:
		return "fn"
	case KwReturn:
		return "return"
	case Semicolon:
		return ";"
	case Colon:
		return ":"
	case Comma:
		return ","
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case LeftBrace:
		return "{"
	case RightBrace:
		return "}"
	case Arrow:
		return "->"
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case OpenComment:
		return "/*"
	case CloseComment:
		return "*/"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NumberKind is the signedness/floatness of a numeric literal's declared
// type. Width validation beyond this tag is a type-checker concern.
type NumberKind int

const (
	Signed NumberKind = iota
	Unsigned
	Float
)

func (k NumberKind) String() string {
	switch k {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("NumberKind(%d)", int(k))
	}
}

// NumberType is a number's kind and bit width.
type NumberType struct {
	Kind NumberKind
	Bits int
}

var (
	I32 = NumberType{Kind: Signed, Bits: 32}
	I64 = NumberType{Kind: Signed, Bits: 64}
	U32 = NumberType{Kind: Unsigned, Bits: 32}
	U64 = NumberType{Kind: Unsigned, Bits: 64}
	F32 = NumberType{Kind: Float, Bits: 32}
	F64 = NumberType{Kind: Float, Bits: 64}
)

// NumberLiteral is a lexed numeric literal: its declared kind and its raw
// unsigned 64-bit value. The lexer always tags a literal I32 by default;
// wider typing is not performed here.
type NumberLiteral struct {
	Kind  NumberType
	Value uint64
}

// Int32Literal is a convenience constructor for a signed-32 literal.
func Int32Literal(value uint64) NumberLiteral {
	return NumberLiteral{Kind: I32, Value: value}
}

// Span is a byte range into the original source text.
type Span struct {
	Start int
	End   int
}

// Token is a tagged variant with its byte span. Only Kind is meaningful for
// comparison/dispatch; Ident and NumberLit carry payload for the kinds that
// have one.
type Token struct {
	Kind      Kind
	Ident     string
	NumberLit NumberLiteral
	Span      Span
}

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier %q", t.Ident)
	case Number:
		return fmt.Sprintf("number %d", t.NumberLit.Value)
	default:
		return t.Kind.String()
	}
}
