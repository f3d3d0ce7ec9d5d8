package parser

import (
	"strconv"

	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/token"
)

// canStartExpression reports whether the current token may begin an
// expression; used to spot trailing commas in test lists.
func (p *Parser) canStartExpression() bool {
	switch p.curToken.Type {
	case token.IDENT, token.INT, token.FLOAT, token.STRING, token.BYTES,
		token.NONE, token.TRUE, token.FALSE, token.ELLIPSIS,
		token.LPAREN, token.LAMBDA:
		return true
	}
	return false
}

// parseTestList parses expr {',' expr} [','] and wraps multiple elements
// (or a trailing comma) into a bare tuple.
func (p *Parser) parseTestList() ast.Expression {
	first := p.parseExpression()
	if first == nil {
		return nil
	}
	if p.curToken.Type != token.COMMA {
		return first
	}

	elems := []ast.Expression{first}
	end := first.Span().End
	for p.curToken.Type == token.COMMA {
		p.nextToken()
		if !p.canStartExpression() {
			break // trailing comma
		}
		elem := p.parseExpression()
		if elem == nil {
			return nil
		}
		elems = append(elems, elem)
		end = elem.Span().End
	}
	return &ast.TupleExpr{Start: first.Span().Start, EndPos: end, Elements: elems}
}

func (p *Parser) parseExpression() ast.Expression {
	if p.curToken.Type == token.LAMBDA {
		return p.parseLambda()
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of call,
// attribute, or subscript trailers.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch p.curToken.Type {
		case token.LPAREN:
			p.nextToken()
			var args []ast.Expression
			for p.curToken.Type != token.RPAREN {
				arg := p.parseExpression()
				if arg == nil {
					return nil
				}
				args = append(args, arg)
				if p.curToken.Type != token.COMMA {
					break
				}
				p.nextToken()
			}
			rparen, ok := p.expect(token.RPAREN)
			if !ok {
				return nil
			}
			expr = &ast.Call{Func: expr, Args: args, End: rparen.End}
		case token.DOT:
			p.nextToken()
			nameTok, ok := p.expect(token.IDENT)
			if !ok {
				return nil
			}
			attr := &ast.Name{Token: nameTok, Value: nameTok.Lexeme, Ctx: ast.Load}
			expr = &ast.Attribute{Value: expr, Attr: attr}
		case token.LBRACKET:
			p.nextToken()
			slice := p.parseTestList()
			if slice == nil {
				return nil
			}
			rbracket, ok := p.expect(token.RBRACKET)
			if !ok {
				return nil
			}
			expr = &ast.Subscript{Value: expr, Slice: slice, End: rbracket.End}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.curToken
	switch tok.Type {
	case token.IDENT:
		p.nextToken()
		return &ast.Name{Token: tok, Value: tok.Lexeme, Ctx: ast.Load}
	case token.INT:
		p.nextToken()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			p.errorAt(tok.Span(), "Invalid integer literal %q.", tok.Lexeme)
			return nil
		}
		return &ast.IntegerLiteral{Token: tok, Value: value}
	case token.FLOAT:
		p.nextToken()
		return &ast.FloatLiteral{Token: tok, Value: tok.Lexeme}
	case token.STRING:
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.BYTES:
		p.nextToken()
		return &ast.BytesLiteral{Token: tok, Value: tok.Literal}
	case token.NONE:
		p.nextToken()
		return &ast.NoneLiteral{Token: tok}
	case token.TRUE:
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: true}
	case token.FALSE:
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: false}
	case token.ELLIPSIS:
		p.nextToken()
		return &ast.EllipsisLiteral{Token: tok}
	case token.LPAREN:
		return p.parseParenthesized()
	}
	p.unexpected("an expression")
	return nil
}

// parseParenthesized parses (expr), (a, b, ...) and ().
func (p *Parser) parseParenthesized() ast.Expression {
	lparen := p.curToken
	p.nextToken()

	if p.curToken.Type == token.RPAREN {
		rparen := p.curToken
		p.nextToken()
		return &ast.TupleExpr{Start: lparen.Offset, EndPos: rparen.End}
	}

	var elems []ast.Expression
	sawComma := false
	for {
		elem := p.parseExpression()
		if elem == nil {
			return nil
		}
		elems = append(elems, elem)
		if p.curToken.Type != token.COMMA {
			break
		}
		sawComma = true
		p.nextToken()
		if p.curToken.Type == token.RPAREN {
			break // trailing comma
		}
	}
	rparen, ok := p.expect(token.RPAREN)
	if !ok {
		return nil
	}

	if len(elems) == 1 && !sawComma {
		return &ast.Paren{Start: lparen.Offset, EndPos: rparen.End, Inner: elems[0]}
	}
	return &ast.TupleExpr{Start: lparen.Offset, EndPos: rparen.End, Elements: elems}
}

func (p *Parser) parseLambda() ast.Expression {
	lambdaTok := p.curToken
	p.nextToken()

	var params []*ast.Param
	for p.curToken.Type == token.IDENT {
		nameTok := p.curToken
		p.nextToken()
		param := &ast.Param{
			Name: &ast.Name{Token: nameTok, Value: nameTok.Lexeme, Ctx: ast.Store},
		}
		if p.curToken.Type == token.ASSIGN {
			p.nextToken()
			param.Default = p.parseExpression()
			if param.Default == nil {
				return nil
			}
		}
		params = append(params, param)
		if p.curToken.Type != token.COMMA {
			break
		}
		p.nextToken()
	}

	if _, ok := p.expect(token.COLON); !ok {
		return nil
	}
	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return &ast.Lambda{Token: lambdaTok, Params: params, Body: body}
}

// markStore flips name nodes in assignment-target position to store context.
func markStore(e ast.Expression) {
	switch x := e.(type) {
	case *ast.Name:
		x.Ctx = ast.Store
	case *ast.TupleExpr:
		for _, elem := range x.Elements {
			markStore(elem)
		}
	case *ast.Paren:
		markStore(x.Inner)
	}
}
