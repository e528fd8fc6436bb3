package grammar

import (
	"testing"

	"github.com/hxyulin/redoxc/lexer"
	"github.com/stretchr/testify/require"
)

type fakeCursor struct {
	toks []lexer.Token
	pos  int
}

func (c *fakeCursor) Current() (lexer.Token, error) {
	if c.pos >= len(c.toks) {
		return lexer.Token{}, errUnexpectedEOF
	}
	return c.toks[c.pos], nil
}

func (c *fakeCursor) Advance() (*lexer.Token, error) {
	c.pos++
	if c.pos >= len(c.toks) {
		return nil, nil
	}
	t := c.toks[c.pos]
	return &t, nil
}

func (c *fakeCursor) AdvanceNoEOF() (lexer.Token, error) {
	tok, err := c.Advance()
	if err != nil {
		return lexer.Token{}, err
	}
	if tok == nil {
		return lexer.Token{}, errUnexpectedEOF
	}
	return *tok, nil
}

func (c *fakeCursor) Expect(kind lexer.Kind) error {
	tok, err := c.Current()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return &UnmatchedError{RuleName: "expect", Token: tok}
	}
	return nil
}

var errUnexpectedEOF = &UnmatchedError{RuleName: "<eof>"}

func TestRuleRejectsMoreThanOneWildcard(t *testing.T) {
	_, err := NewRule("bad",
		Alt{Pattern: Wildcard(), Body: func(Cursor) (any, error) { return nil, nil }},
		Alt{Pattern: Wildcard(), Body: func(Cursor) (any, error) { return nil, nil }},
	)
	require.Error(t, err)
	var ambigErr *AmbiguousRuleError
	require.ErrorAs(t, err, &ambigErr)
	require.Equal(t, 2, ambigErr.WildcardCount)
}

func TestRuleAllowsSingleWildcard(t *testing.T) {
	r, err := NewRule("ok",
		Alt{Pattern: Specific(lexer.Number), Body: func(Cursor) (any, error) { return "number", nil }},
		Alt{Pattern: Wildcard(), Body: func(Cursor) (any, error) { return "fallback", nil }},
	)
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestMatchDispatchesOnSpecificPattern(t *testing.T) {
	r := MustNewRule("expr",
		Alt{Pattern: Specific(lexer.Number), Body: func(Cursor) (any, error) { return "number", nil }},
		Alt{Pattern: Specific(lexer.Ident), Body: func(Cursor) (any, error) { return "ident", nil }},
		Alt{Pattern: Wildcard(), Body: func(Cursor) (any, error) { return "fallback", nil }},
	)

	cur := &fakeCursor{toks: []lexer.Token{{Kind: lexer.Ident}}}
	got, err := r.Match(cur)
	require.NoError(t, err)
	require.Equal(t, "ident", got)
}

func TestMatchFallsBackToWildcard(t *testing.T) {
	r := MustNewRule("expr",
		Alt{Pattern: Specific(lexer.Number), Body: func(Cursor) (any, error) { return "number", nil }},
		Alt{Pattern: Wildcard(), Body: func(Cursor) (any, error) { return "fallback", nil }},
	)

	cur := &fakeCursor{toks: []lexer.Token{{Kind: lexer.KwReturn}}}
	got, err := r.Match(cur)
	require.NoError(t, err)
	require.Equal(t, "fallback", got)
}

func TestMatchWithNoFallbackIsUnmatchedError(t *testing.T) {
	r := MustNewRule("expr",
		Alt{Pattern: Specific(lexer.Number), Body: func(Cursor) (any, error) { return "number", nil }},
	)

	cur := &fakeCursor{toks: []lexer.Token{{Kind: lexer.KwReturn}}}
	_, err := r.Match(cur)
	var unmatched *UnmatchedError
	require.ErrorAs(t, err, &unmatched)
	require.Equal(t, "expr", unmatched.RuleName)
}

// TestMatchTieBreakFirstListedWins checks that two alternatives sharing a
// discriminating kind are allowed (not ambiguous), and the first listed
// one wins.
func TestMatchTieBreakFirstListedWins(t *testing.T) {
	r := MustNewRule("stmt",
		Alt{Pattern: Specific(lexer.Ident), Body: func(Cursor) (any, error) { return "first", nil }},
		Alt{Pattern: Specific(lexer.Ident), Body: func(Cursor) (any, error) { return "second", nil }},
	)

	cur := &fakeCursor{toks: []lexer.Token{{Kind: lexer.Ident}}}
	got, err := r.Match(cur)
	require.NoError(t, err)
	require.Equal(t, "first", got)
}

func TestDescribeListsPatternsDeterministically(t *testing.T) {
	r := MustNewRule("type",
		Alt{Pattern: Specific(lexer.Ident), Body: func(Cursor) (any, error) { return nil, nil }},
		Alt{Pattern: Specific(lexer.LeftParen), Body: func(Cursor) (any, error) { return nil, nil }},
	)

	first := r.Describe()
	second := r.Describe()
	require.Equal(t, first, second)
	require.Contains(t, first, "type := ")
}
