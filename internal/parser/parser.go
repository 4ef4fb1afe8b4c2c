// Package parser turns a token stream from internal/lexer into the surface
// AST defined by internal/ast.
package parser

import (
	"fmt"

	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/errors"
	"github.com/lambdapi/lambdapi/internal/lexer"
)

// Parser is a recursive-descent parser with one token of lookahead.
type Parser struct {
	l    *lexer.Lexer
	file string

	cur  lexer.Token
	peek lexer.Token
}

// New returns a Parser reading from l. file names the source for error
// positions; it may be empty for REPL input.
func New(l *lexer.Lexer, file string) *Parser {
	p := &Parser{l: l, file: file}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) pos() ast.Pos {
	return ast.Pos{Line: p.cur.Line, Column: p.cur.Column, File: p.file}
}

func (p *Parser) errorf(format string, args ...any) error {
	return errors.ParseError(fmt.Sprintf(format, args...), p.pos())
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.cur.Type != tt {
		return lexer.Token{}, p.errorf("expected %s, found %s", tt, p.cur.Type)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// ParseStatement parses a single top-level statement (def/let/eval/show),
// including its terminating semicolon.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	switch p.cur.Type {
	case lexer.DEF:
		return p.parseDeclare()
	case lexer.LET:
		return p.parseLet()
	case lexer.EVAL:
		return p.parseEval()
	case lexer.SHOW:
		return p.parseShow()
	case lexer.EOF:
		return nil, nil
	default:
		return nil, p.errorf("expected a statement (def/let/eval/show), found %s", p.cur.Type)
	}
}

func (p *Parser) parseDeclare() (ast.Statement, error) {
	pos := p.pos()
	p.advance() // def
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DCOLON); err != nil {
		return nil, err
	}
	ty, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.Declare{Name: name.Literal, Type: ty, Pos: pos}, nil
}

func (p *Parser) parseLet() (ast.Statement, error) {
	pos := p.pos()
	p.advance() // let
	name, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	term, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.Let{Name: name.Literal, Term: term, Pos: pos}, nil
}

func (p *Parser) parseEval() (ast.Statement, error) {
	pos := p.pos()
	p.advance() // eval
	term, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.Eval{Term: term, Pos: pos}, nil
}

func (p *Parser) parseShow() (ast.Statement, error) {
	pos := p.pos()
	p.advance() // show
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return &ast.Show{Pos: pos}, nil
}

// parseExpr parses a full expression, including a trailing `:: T` annotation
// that binds to the entire expression to its left — not just its innermost
// sub-term. Lambda/forall bodies are parsed with parseUnannotated, never
// parseExpr, so that `\ x -> x :: a` elaborates as `(\x -> x) :: a` rather
// than `\x -> (x :: a)`.
func (p *Parser) parseExpr() (ast.Expr, error) {
	term, err := p.parseUnannotated()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.DCOLON {
		pos := p.pos()
		p.advance()
		ty, err := p.parseUnannotated()
		if err != nil {
			return nil, err
		}
		return &ast.Annot{Term: term, Type: ty, Pos: pos}, nil
	}
	return term, nil
}

func (p *Parser) parseUnannotated() (ast.Expr, error) {
	switch p.cur.Type {
	case lexer.LAMBDA:
		return p.parseLambda()
	case lexer.FORALL:
		return p.parseForall()
	default:
		return p.parseArrow()
	}
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	pos := p.pos()
	p.advance() // lambda / \ / λ
	arg, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ARROW); err != nil {
		return nil, err
	}
	body, err := p.parseUnannotated()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Arg: arg.Literal, Body: body, Pos: pos}, nil
}

func (p *Parser) parseForall() (ast.Expr, error) {
	pos := p.pos()
	p.advance() // forall / ∀
	var bindings []ast.ForallBinding
	for {
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		name, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		ty, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.ForallBinding{Name: name.Literal, Type: ty})
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(lexer.DOT); err != nil {
		return nil, err
	}
	body, err := p.parseUnannotated()
	if err != nil {
		return nil, err
	}
	return &ast.Forall{Bindings: bindings, Body: body, Pos: pos}, nil
}

// parseArrow parses a right-associative chain of `->`, binding tighter than
// annotation but looser than application.
func (p *Parser) parseArrow() (ast.Expr, error) {
	pos := p.pos()
	left, err := p.parseApp()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == lexer.ARROW {
		p.advance()
		right, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		return &ast.Pi{ArgType: left, RetType: right, Pos: pos}, nil
	}
	return left, nil
}

// parseApp parses left-associative juxtaposition application.
func (p *Parser) parseApp() (ast.Expr, error) {
	pos := p.pos()
	fn, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		fn = &ast.App{Fun: fn, Arg: arg, Pos: pos}
	}
	return fn, nil
}

func (p *Parser) startsAtom() bool {
	switch p.cur.Type {
	case lexer.IDENT, lexer.INT, lexer.NAT, lexer.UNIVERSE, lexer.ZERO, lexer.SUCC, lexer.LPAREN:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	pos := p.pos()
	switch p.cur.Type {
	case lexer.IDENT:
		name := p.cur.Literal
		p.advance()
		return &ast.Var{Name: name, Pos: pos}, nil
	case lexer.INT:
		n := 0
		for _, r := range p.cur.Literal {
			n = n*10 + int(r-'0')
		}
		p.advance()
		return &ast.Num{Value: n, Pos: pos}, nil
	case lexer.NAT:
		p.advance()
		return &ast.Nat{Pos: pos}, nil
	case lexer.UNIVERSE:
		p.advance()
		return &ast.Universe{Pos: pos}, nil
	case lexer.ZERO:
		p.advance()
		return &ast.Zero{Pos: pos}, nil
	case lexer.SUCC:
		p.advance()
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return &ast.Succ{Arg: arg, Pos: pos}, nil
	case lexer.LPAREN:
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, p.errorf("expected an expression, found %s", p.cur.Type)
	}
}
