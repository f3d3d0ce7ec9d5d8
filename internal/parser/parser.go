package parser

import (
	"fmt"

	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/token"
)

// TokenSource yields the token stream to parse. The lexer implements it
// directly; the pipeline replays a pre-lexed buffer through it.
type TokenSource interface {
	NextToken() token.Token
}

// Parser turns the token stream into an AST. It collects parse errors as
// diagnostics and keeps going where recovery is trivial; the driver refuses
// to type-check a module that produced any parse errors.
//
// Parse functions leave the cursor on the first token after the construct
// they consumed.
type Parser struct {
	l      TokenSource
	errors []diagnostics.Diag

	curToken  token.Token
	peekToken token.Token
}

func New(l TokenSource) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Errors() []diagnostics.Diag {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	for {
		p.peekToken = p.l.NextToken()
		if p.peekToken.Type != token.ILLEGAL {
			return
		}
		p.errorAt(p.peekToken.Span(), "%s", p.peekToken.Literal)
	}
}

func (p *Parser) errorAt(span token.Span, format string, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.NewError(fmt.Sprintf(format, args...), span))
}

func (p *Parser) unexpected(expected string) {
	p.errorAt(p.curToken.Span(), "Unexpected token %q, expected %s.", p.curToken.Lexeme, expected)
}

// expect consumes the current token if it has the wanted type, or records
// an error and leaves the cursor in place.
func (p *Parser) expect(t token.Type) (token.Token, bool) {
	if p.curToken.Type != t {
		p.unexpected(string(t))
		return p.curToken, false
	}
	tok := p.curToken
	p.nextToken()
	return tok, true
}

// sync skips ahead past the next NEWLINE so that one malformed statement
// does not cascade.
func (p *Parser) sync() {
	for p.curToken.Type != token.NEWLINE && p.curToken.Type != token.EOF {
		p.nextToken()
	}
	if p.curToken.Type == token.NEWLINE {
		p.nextToken()
	}
}

// ParseModule parses a whole source file.
func (p *Parser) ParseModule() *ast.Module {
	mod := &ast.Module{}
	for p.curToken.Type != token.EOF {
		switch p.curToken.Type {
		case token.NEWLINE:
			p.nextToken()
			continue
		case token.INDENT, token.DEDENT:
			p.errorAt(p.curToken.Span(), "Unexpected indentation.")
			p.nextToken()
			continue
		}
		if stmt := p.parseStatement(); stmt != nil {
			mod.Statements = append(mod.Statements, stmt)
		}
	}
	return mod
}

// ParseExpression parses a single expression, the entry point used for
// building types from source snippets.
func (p *Parser) ParseExpression() ast.Expression {
	expr := p.parseTestList()
	if p.curToken.Type == token.NEWLINE {
		p.nextToken()
	}
	if p.curToken.Type != token.EOF {
		p.unexpected("end of input")
	}
	return expr
}
