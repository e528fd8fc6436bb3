package parser

import (
	"errors"

	"github.com/hxyulin/redoxc/ast"
	"github.com/hxyulin/redoxc/grammar"
	"github.com/hxyulin/redoxc/lexer"
)

// Parser is the recursive-descent driver. It consumes a Helper and
// produces a list of ast.TopLevel nodes, using package grammar to
// dispatch the "expr" and "type" non-terminals' alternatives.
type Parser struct {
	helper   *Helper
	exprRule *grammar.Rule
	typeRule *grammar.Rule
}

// New builds a Parser over source.
func New(source string) *Parser {
	p := &Parser{helper: NewHelper(lexer.New(source))}

	p.exprRule = grammar.MustNewRule("expr",
		grammar.Alt{Pattern: grammar.Specific(lexer.Number), Body: p.parseNumberExpr},
		grammar.Alt{Pattern: grammar.Specific(lexer.Ident), Body: p.parseVariableExpr},
		grammar.Alt{Pattern: grammar.Specific(lexer.KwReturn), Body: p.parseReturnExpr},
	)
	p.typeRule = grammar.MustNewRule("type",
		grammar.Alt{Pattern: grammar.Specific(lexer.Ident), Body: p.parseNamedType},
		grammar.Alt{Pattern: grammar.Specific(lexer.LeftParen), Body: p.parseUnitType},
	)

	return p
}

// Parse parses source and returns the list of top levels. An empty
// source produces an empty, non-nil list.
func Parse(source string) ([]ast.TopLevel, error) {
	return New(source).Parse()
}

// Parse runs the program := top_level* rule.
func (p *Parser) Parse() ([]ast.TopLevel, error) {
	tok, err := p.helper.Advance()
	if err != nil {
		return nil, err
	}

	out := []ast.TopLevel{}
	for tok != nil {
		if tok.Kind != lexer.KwFn {
			return nil, errUnexpectedToken(*tok)
		}
		tl, err := p.parseTopLevel()
		if err != nil {
			var unmatched *grammar.UnmatchedError
			if errors.As(err, &unmatched) {
				return nil, errUnexpectedToken(unmatched.Token)
			}
			return nil, err
		}
		out = append(out, tl)
		tok = p.helper.Peek()
	}
	return out, nil
}

// consume checks that the current token has kind, then advances past it.
func (p *Parser) consume(kind lexer.Kind) error {
	if err := p.helper.Expect(kind); err != nil {
		return err
	}
	_, err := p.helper.Advance()
	return err
}

// consumeIdent requires the current token to be an identifier, returns its
// text, and advances past it.
func (p *Parser) consumeIdent() (string, error) {
	tok, err := p.helper.Current()
	if err != nil {
		return "", err
	}
	if tok.Kind != lexer.Ident {
		return "", errUnexpectedToken(tok)
	}
	name := tok.Ident
	if _, err := p.helper.Advance(); err != nil {
		return "", err
	}
	return name, nil
}

// parseTopLevel runs top_level := fn_def, wrapping the result.
func (p *Parser) parseTopLevel() (ast.TopLevel, error) {
	startTok, err := p.helper.Current()
	if err != nil {
		return ast.TopLevel{}, err
	}

	def, end, err := p.parseFunctionDef()
	if err != nil {
		return ast.TopLevel{}, err
	}

	span := lexer.Span{Start: startTok.Span.Start, End: end}
	expr := ast.NewWrapped(ast.FunctionDefExpr(def), span)
	return ast.TopLevelFromExpr(expr), nil
}

// parseFunctionDef runs:
//
//	fn_def := 'fn' IDENT '(' typed_args ')' ('->' type)? block
//
// and returns the parsed definition along with the byte offset just past
// its closing '}'.
func (p *Parser) parseFunctionDef() (ast.FunctionDef, int, error) {
	if err := p.consume(lexer.KwFn); err != nil {
		return ast.FunctionDef{}, 0, err
	}

	name, err := p.consumeIdent()
	if err != nil {
		return ast.FunctionDef{}, 0, err
	}

	if err := p.consume(lexer.LeftParen); err != nil {
		return ast.FunctionDef{}, 0, err
	}

	args, err := p.parseTypedArgs()
	if err != nil {
		return ast.FunctionDef{}, 0, err
	}

	if err := p.consume(lexer.RightParen); err != nil {
		return ast.FunctionDef{}, 0, err
	}

	var returnTy *ast.Type
	cur, err := p.helper.Current()
	if err != nil {
		return ast.FunctionDef{}, 0, err
	}
	if cur.Kind == lexer.Arrow {
		if err := p.consume(lexer.Arrow); err != nil {
			return ast.FunctionDef{}, 0, err
		}
		ty, err := p.parseType()
		if err != nil {
			return ast.FunctionDef{}, 0, err
		}
		returnTy = &ty
	}

	body, end, err := p.parseBlock()
	if err != nil {
		return ast.FunctionDef{}, 0, err
	}

	return ast.FunctionDef{
		Name:      name,
		Arguments: args,
		ReturnTy:  returnTy,
		Body:      body,
	}, end, nil
}

// parseTypedArgs runs:
//
//	typed_args := (IDENT ':' type (',' IDENT ':' type)*)?
func (p *Parser) parseTypedArgs() ([]ast.Argument, error) {
	cur, err := p.helper.Current()
	if err != nil {
		return nil, err
	}
	if cur.Kind == lexer.RightParen {
		return nil, nil
	}

	var args []ast.Argument
	for {
		name, err := p.consumeIdent()
		if err != nil {
			return nil, err
		}
		if err := p.consume(lexer.Colon); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Argument{Name: name, Ty: ty})

		cur, err := p.helper.Current()
		if err != nil {
			return nil, err
		}
		if cur.Kind != lexer.Comma {
			break
		}
		if err := p.consume(lexer.Comma); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// parseType runs the "type" rule via the grammar matcher.
func (p *Parser) parseType() (ast.Type, error) {
	result, err := p.typeRule.Match(p.helper)
	if err != nil {
		return ast.Type{}, err
	}
	return result.(ast.Type), nil
}

func (p *Parser) parseNamedType(cur grammar.Cursor) (any, error) {
	tok, err := cur.Current()
	if err != nil {
		return nil, err
	}
	if _, err := cur.Advance(); err != nil {
		return nil, err
	}
	ty, ok := ast.LookupNamedType(tok.Ident)
	if !ok {
		return nil, errUnexpectedToken(tok)
	}
	return ty, nil
}

func (p *Parser) parseUnitType(cur grammar.Cursor) (any, error) {
	if err := cur.Expect(lexer.LeftParen); err != nil {
		return nil, err
	}
	if _, err := cur.Advance(); err != nil {
		return nil, err
	}
	if err := cur.Expect(lexer.RightParen); err != nil {
		return nil, err
	}
	if _, err := cur.Advance(); err != nil {
		return nil, err
	}
	return ast.Unit(), nil
}

// parseBlock runs:
//
//	block := '{' statement* '}'
//
// and returns the block along with the byte offset just past its closing
// '}'.
func (p *Parser) parseBlock() (ast.Block, int, error) {
	if err := p.consume(lexer.LeftBrace); err != nil {
		return ast.Block{}, 0, err
	}

	stmts := []ast.Expr{}
	for {
		tok := p.helper.Peek()
		if tok == nil {
			return ast.Block{}, 0, errUnexpectedEOF()
		}
		if tok.Kind == lexer.RightBrace {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return ast.Block{}, 0, err
		}
		stmts = append(stmts, stmt)
	}

	end, err := p.helper.Current()
	if err != nil {
		return ast.Block{}, 0, err
	}
	endOffset := end.Span.End

	if err := p.consume(lexer.RightBrace); err != nil {
		return ast.Block{}, 0, err
	}

	return ast.Block{Statements: stmts}, endOffset, nil
}

// parseStatement runs:
//
//	statement := expr ';'
func (p *Parser) parseStatement() (ast.Expr, error) {
	result, err := p.exprRule.Match(p.helper)
	if err != nil {
		return ast.Expr{}, err
	}
	expr := result.(ast.Expr)

	if err := p.consume(lexer.Semicolon); err != nil {
		return ast.Expr{}, err
	}
	return expr, nil
}

func (p *Parser) parseNumberExpr(cur grammar.Cursor) (any, error) {
	tok, err := cur.Current()
	if err != nil {
		return nil, err
	}
	if _, err := cur.Advance(); err != nil {
		return nil, err
	}
	lit := ast.NumberLiteralOf(tok.NumberLit)
	return ast.NewWrapped(ast.LiteralExpr(lit), tok.Span), nil
}

func (p *Parser) parseVariableExpr(cur grammar.Cursor) (any, error) {
	tok, err := cur.Current()
	if err != nil {
		return nil, err
	}
	if _, err := cur.Advance(); err != nil {
		return nil, err
	}
	return ast.NewWrapped(ast.VariableExpr(tok.Ident), tok.Span), nil
}

func (p *Parser) parseReturnExpr(cur grammar.Cursor) (any, error) {
	kw, err := cur.Current()
	if err != nil {
		return nil, err
	}
	if _, err := cur.Advance(); err != nil {
		return nil, err
	}

	next, err := cur.Current()
	if err != nil {
		return nil, err
	}
	if next.Kind == lexer.Semicolon {
		span := lexer.Span{Start: kw.Span.Start, End: kw.Span.End}
		return ast.NewWrapped(ast.ReturnExprKind(nil), span), nil
	}

	result, err := p.exprRule.Match(cur)
	if err != nil {
		return nil, err
	}
	inner := result.(ast.Expr)
	span := lexer.Span{Start: kw.Span.Start, End: inner.Span.End}
	return ast.NewWrapped(ast.ReturnExprKind(&inner), span), nil
}
