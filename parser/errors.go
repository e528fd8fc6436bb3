// Package parser implements the parser helper and the recursive-descent
// parser that together turn a token stream into a list of ast.TopLevel
// nodes.
package parser

import (
	"fmt"

	"github.com/hxyulin/redoxc/lexer"
)

// ParseError is the sum of parse-time errors.
type ParseError struct {
	// Exactly one of the following is set.
	LexerErr        error
	UnexpectedEOF   bool
	UnexpectedToken *lexer.Token
	UnclosedComment bool
}

func (e *ParseError) Error() string {
	switch {
	case e.LexerErr != nil:
		return e.LexerErr.Error()
	case e.UnexpectedEOF:
		return "unexpected EOF"
	case e.UnexpectedToken != nil:
		return fmt.Sprintf("unexpected token: %s", e.UnexpectedToken)
	case e.UnclosedComment:
		return "unclosed comment"
	default:
		return "parse error"
	}
}

func (e *ParseError) Unwrap() error { return e.LexerErr }

func errLexer(err error) *ParseError {
	return &ParseError{LexerErr: err}
}

func errUnexpectedEOF() *ParseError {
	return &ParseError{UnexpectedEOF: true}
}

func errUnexpectedToken(tok lexer.Token) *ParseError {
	return &ParseError{UnexpectedToken: &tok}
}

func errUnclosedComment() *ParseError {
	return &ParseError{UnclosedComment: true}
}
