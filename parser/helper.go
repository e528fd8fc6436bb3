package parser

import (
	"github.com/hxyulin/redoxc/lexer"
)

// Helper is a one-token-lookahead cursor over the lexer. It owns comment
// skipping: when Advance pulls an OpenComment token, it consumes tokens
// until a matching CloseComment and then pulls one more token, repeating
// while that token opens another comment, so that '/* ... */' never
// surfaces to the parser.
type Helper struct {
	lex     *lexer.Lexer
	current *lexer.Token
}

// NewHelper wraps lex in a Helper. No token has been pulled yet; call
// Advance to prime the cursor.
func NewHelper(lex *lexer.Lexer) *Helper {
	return &Helper{lex: lex}
}

// Advance pulls the next token, skipping over any block comment, and
// returns it. It returns (nil, nil) at end of input.
func (h *Helper) Advance() (*lexer.Token, error) {
	tok, ok, err := h.lex.Next()
	if err != nil {
		h.current = nil
		return nil, errLexer(err)
	}
	if !ok {
		h.current = nil
		return nil, nil
	}

	for tok.Kind == lexer.OpenComment {
		closed := false
		for {
			inner, ok, err := h.lex.Next()
			if err != nil {
				h.current = nil
				return nil, errLexer(err)
			}
			if !ok {
				break
			}
			if inner.Kind == lexer.CloseComment {
				closed = true
				break
			}
		}
		if !closed {
			h.current = nil
			return nil, errUnclosedComment()
		}

		next, ok, err := h.lex.Next()
		if err != nil {
			h.current = nil
			return nil, errLexer(err)
		}
		if !ok {
			h.current = nil
			return nil, nil
		}
		tok = next
	}

	h.current = &tok
	return &tok, nil
}

// AdvanceNoEOF is Advance but fails with UnexpectedEOF instead of
// returning a nil token.
func (h *Helper) AdvanceNoEOF() (lexer.Token, error) {
	tok, err := h.Advance()
	if err != nil {
		return lexer.Token{}, err
	}
	if tok == nil {
		return lexer.Token{}, errUnexpectedEOF()
	}
	return *tok, nil
}

// Current returns the last token pulled by Advance, failing with
// UnexpectedEOF if none has been pulled (or input is exhausted).
func (h *Helper) Current() (lexer.Token, error) {
	if h.current == nil {
		return lexer.Token{}, errUnexpectedEOF()
	}
	return *h.current, nil
}

// Expect verifies that Current's token kind matches expected, without
// consuming it.
func (h *Helper) Expect(kind lexer.Kind) error {
	tok, err := h.Current()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return errUnexpectedToken(tok)
	}
	return nil
}

// Peek returns the last token pulled by Advance without erroring at end
// of input; it returns nil once the input is exhausted. Callers that need
// to loop "while there's another token" use this instead of Current.
func (h *Helper) Peek() *lexer.Token {
	return h.current
}
