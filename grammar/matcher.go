// Package grammar implements a small runtime combinator library that
// expresses a non-terminal's alternatives as (discriminating pattern,
// body) pairs, detects ambiguous rules at construction time, and
// otherwise leaves parsing of an alternative's body to ordinary Go code.
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/hxyulin/redoxc/lexer"
)

// Cursor is the subset of the parser helper a rule body needs to consume
// tokens. It lets this package stay independent of package parser (which
// depends on grammar, not the other way around).
type Cursor interface {
	Current() (lexer.Token, error)
	Advance() (*lexer.Token, error)
	AdvanceNoEOF() (lexer.Token, error)
	Expect(kind lexer.Kind) error
}

// Pattern is the discriminating pattern of one alternative: either a
// specific token kind, or the wildcard (fallback) pattern.
type Pattern struct {
	wildcard bool
	kind     lexer.Kind
}

// Specific builds a pattern that matches only the given token kind.
func Specific(kind lexer.Kind) Pattern {
	return Pattern{kind: kind}
}

// Wildcard builds the non-specific fallback pattern. At most one
// alternative per rule may use it.
func Wildcard() Pattern {
	return Pattern{wildcard: true}
}

func (p Pattern) String() string {
	if p.wildcard {
		return "_"
	}
	return p.kind.String()
}

// Body is the parsing logic for one alternative, invoked once its Pattern
// has been selected. It receives the cursor (still positioned so Current()
// returns the token that matched the pattern) and returns whatever value
// the caller wants the rule to produce.
type Body func(Cursor) (any, error)

// Alt is one alternative of a rule: a discriminating Pattern and the Body
// that parses the rest of the alternative once selected.
type Alt struct {
	Pattern Pattern
	Body    Body
}

// Rule is a non-terminal: an ordered list of alternatives. Alternatives
// with a specific pattern are tried first, in listed order (so two
// alternatives sharing a discriminating kind are not ambiguous — the
// first listed wins); the single wildcard alternative, if present, is
// the fallback.
type Rule struct {
	name string
	alts []Alt
}

// AmbiguousRuleError is returned by NewRule when more than one alternative
// uses the wildcard pattern.
type AmbiguousRuleError struct {
	RuleName      string
	WildcardCount int
}

func (e *AmbiguousRuleError) Error() string {
	return fmt.Sprintf("grammar: rule %q has %d wildcard alternatives, at most 1 is allowed", e.RuleName, e.WildcardCount)
}

// NewRule builds a Rule, rejecting it if more than one alternative has a
// wildcard pattern. The check runs at rule-construction time rather than
// at parse time, so an ambiguous grammar fails as soon as the rule is
// built, before any token is matched.
func NewRule(name string, alts ...Alt) (*Rule, error) {
	wildcards := 0
	for _, a := range alts {
		if a.Pattern.wildcard {
			wildcards++
		}
	}
	if wildcards > 1 {
		return nil, &AmbiguousRuleError{RuleName: name, WildcardCount: wildcards}
	}
	return &Rule{name: name, alts: alts}, nil
}

// MustNewRule is like NewRule but panics on an ambiguous rule. Intended for
// rule construction at package-init time, where an ambiguous grammar is a
// programming error, not a runtime condition.
func MustNewRule(name string, alts ...Alt) *Rule {
	r, err := NewRule(name, alts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the rule's non-terminal name.
func (r *Rule) Name() string { return r.name }

// UnmatchedError is returned by Match when the current token does not fit
// any alternative's pattern and the rule has no wildcard fallback.
type UnmatchedError struct {
	RuleName string
	Token    lexer.Token
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("grammar: rule %q does not accept %s", e.RuleName, e.Token)
}

// Match inspects the cursor's current token, selects the first alternative
// whose pattern fits (a specific match wins over the wildcard; among
// specific alternatives, first listed wins), and runs its Body. If no
// alternative fits, it returns an UnmatchedError.
func (r *Rule) Match(cur Cursor) (any, error) {
	tok, err := cur.Current()
	if err != nil {
		return nil, err
	}

	var wildcard *Alt
	for i := range r.alts {
		a := &r.alts[i]
		if a.Pattern.wildcard {
			if wildcard == nil {
				wildcard = a
			}
			continue
		}
		if a.Pattern.kind == tok.Kind {
			return a.Body(cur)
		}
	}
	if wildcard != nil {
		return wildcard.Body(cur)
	}
	return nil, &UnmatchedError{RuleName: r.name, Token: tok}
}

// Describe returns a human-readable, deterministically ordered summary of
// the rule's specific discriminating patterns, for diagnostics. It is not
// used by Match itself.
func (r *Rule) Describe() string {
	set := treeset.NewWithStringComparator()
	hasWildcard := false
	for _, a := range r.alts {
		if a.Pattern.wildcard {
			hasWildcard = true
			continue
		}
		set.Add(a.Pattern.String())
	}

	values := set.Values()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.(string)
	}
	sort.Strings(names)

	s := fmt.Sprintf("%s := %s", r.name, strings.Join(names, " | "))
	if hasWildcard {
		s += " | _"
	}
	return s
}
