package typecheck

import (
	"fmt"

	"github.com/hxyulin/redoxc/ast"
)

// Kind identifies which type-check rule failed.
type Kind int

const (
	// ErrUnableToInferType fires when a function has no declared return
	// type; inference is not implemented.
	ErrUnableToInferType Kind = iota
	// ErrIncompatibleTypes fires when an expression's type does not
	// match what the context requires.
	ErrIncompatibleTypes
	// ErrUnknownVariable fires on a reference to an undeclared name.
	ErrUnknownVariable
)

// Error is the sum of type-check errors. Exactly the fields relevant to
// Kind are populated.
type Error struct {
	Kind     Kind
	Expected *ast.Type
	Found    *ast.Type
	Name     string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnableToInferType:
		return "unable to infer type: function has no declared return type"
	case ErrIncompatibleTypes:
		return fmt.Sprintf("incompatible types: expected %s, found %s", e.Expected, e.Found)
	case ErrUnknownVariable:
		return fmt.Sprintf("unknown variable: %q", e.Name)
	default:
		return "type error"
	}
}
