package parser

import (
	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.DEF:
		return p.parseFunctionDef()
	case token.CLASS:
		return p.parseClassDef()
	case token.RETURN:
		return p.parseReturn()
	case token.PASS:
		tok := p.curToken
		p.nextToken()
		p.endSimple()
		return &ast.Pass{Token: tok}
	case token.IMPORT:
		return p.parseImport()
	case token.FROM:
		return p.parseImportFrom()
	default:
		return p.parseExprStatement()
	}
}

// endSimple consumes the NEWLINE terminating a simple statement.
func (p *Parser) endSimple() {
	switch p.curToken.Type {
	case token.NEWLINE:
		p.nextToken()
	case token.EOF, token.DEDENT:
	default:
		p.unexpected("a newline")
		p.sync()
	}
}

// parseExprStatement parses expression statements, plain assignments, and
// annotated assignments; they all start with an expression.
func (p *Parser) parseExprStatement() ast.Statement {
	first := p.parseTestList()
	if first == nil {
		p.sync()
		return nil
	}

	switch p.curToken.Type {
	case token.COLON:
		p.nextToken()
		annotation := p.parseExpression()
		if annotation == nil {
			p.sync()
			return nil
		}
		var value ast.Expression
		if p.curToken.Type == token.ASSIGN {
			p.nextToken()
			value = p.parseTestList()
			if value == nil {
				p.sync()
				return nil
			}
		}
		markStore(first)
		p.endSimple()
		return &ast.AnnAssign{Target: first, Annotation: annotation, Value: value}

	case token.ASSIGN:
		exprs := []ast.Expression{first}
		for p.curToken.Type == token.ASSIGN {
			p.nextToken()
			next := p.parseTestList()
			if next == nil {
				p.sync()
				return nil
			}
			exprs = append(exprs, next)
		}
		targets := exprs[:len(exprs)-1]
		value := exprs[len(exprs)-1]
		for _, t := range targets {
			markStore(t)
		}
		p.endSimple()
		return &ast.Assign{Targets: targets, Value: value}

	default:
		p.endSimple()
		return &ast.ExprStmt{Value: first}
	}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curToken
	p.nextToken()
	var value ast.Expression
	if p.canStartExpression() {
		value = p.parseTestList()
		if value == nil {
			p.sync()
			return nil
		}
	}
	p.endSimple()
	return &ast.Return{Token: tok, Value: value}
}

func (p *Parser) parseFunctionDef() ast.Statement {
	defTok := p.curToken
	p.nextToken()

	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		p.sync()
		return nil
	}
	if _, ok := p.expect(token.LPAREN); !ok {
		p.sync()
		return nil
	}

	var params []*ast.Param
	for p.curToken.Type == token.IDENT {
		paramTok := p.curToken
		p.nextToken()
		param := &ast.Param{
			Name: &ast.Name{Token: paramTok, Value: paramTok.Lexeme, Ctx: ast.Store},
		}
		if p.curToken.Type == token.COLON {
			p.nextToken()
			param.Annotation = p.parseExpression()
			if param.Annotation == nil {
				p.sync()
				return nil
			}
		}
		if p.curToken.Type == token.ASSIGN {
			p.nextToken()
			param.Default = p.parseExpression()
			if param.Default == nil {
				p.sync()
				return nil
			}
		}
		params = append(params, param)
		if p.curToken.Type != token.COMMA {
			break
		}
		p.nextToken()
	}
	if _, ok := p.expect(token.RPAREN); !ok {
		p.sync()
		return nil
	}

	var returns ast.Expression
	if p.curToken.Type == token.ARROW {
		p.nextToken()
		returns = p.parseExpression()
		if returns == nil {
			p.sync()
			return nil
		}
	}

	body := p.parseBlock()
	return &ast.FunctionDef{
		Token:   defTok,
		Name:    &ast.Name{Token: nameTok, Value: nameTok.Lexeme, Ctx: ast.Store},
		Params:  params,
		Returns: returns,
		Body:    body,
	}
}

func (p *Parser) parseClassDef() ast.Statement {
	classTok := p.curToken
	p.nextToken()

	nameTok, ok := p.expect(token.IDENT)
	if !ok {
		p.sync()
		return nil
	}

	var bases []ast.Expression
	if p.curToken.Type == token.LPAREN {
		p.nextToken()
		for p.curToken.Type != token.RPAREN {
			base := p.parseExpression()
			if base == nil {
				p.sync()
				return nil
			}
			bases = append(bases, base)
			if p.curToken.Type != token.COMMA {
				break
			}
			p.nextToken()
		}
		if _, ok := p.expect(token.RPAREN); !ok {
			p.sync()
			return nil
		}
	}

	body := p.parseBlock()
	return &ast.ClassDef{
		Token: classTok,
		Name:  &ast.Name{Token: nameTok, Value: nameTok.Lexeme, Ctx: ast.Store},
		Bases: bases,
		Body:  body,
	}
}

// parseBlock parses `: NEWLINE INDENT statement+ DEDENT`.
func (p *Parser) parseBlock() []ast.Statement {
	if _, ok := p.expect(token.COLON); !ok {
		p.sync()
		return nil
	}
	if _, ok := p.expect(token.NEWLINE); !ok {
		p.sync()
		return nil
	}
	if _, ok := p.expect(token.INDENT); !ok {
		return nil
	}

	var body []ast.Statement
	for p.curToken.Type != token.DEDENT && p.curToken.Type != token.EOF {
		if p.curToken.Type == token.NEWLINE {
			p.nextToken()
			continue
		}
		if stmt := p.parseStatement(); stmt != nil {
			body = append(body, stmt)
		}
	}
	if p.curToken.Type == token.DEDENT {
		p.nextToken()
	}
	return body
}

func (p *Parser) parseImport() ast.Statement {
	importTok := p.curToken
	p.nextToken()

	var names []*ast.Alias
	for {
		alias, ok := p.parseAlias()
		if !ok {
			p.sync()
			return nil
		}
		names = append(names, alias)
		if p.curToken.Type != token.COMMA {
			break
		}
		p.nextToken()
	}
	p.endSimple()
	return &ast.Import{Token: importTok, Names: names}
}

func (p *Parser) parseImportFrom() ast.Statement {
	fromTok := p.curToken
	p.nextToken()

	module, moduleSpan, ok := p.parseDottedName()
	if !ok {
		p.sync()
		return nil
	}
	if _, ok := p.expect(token.IMPORT); !ok {
		p.sync()
		return nil
	}

	var names []*ast.Alias
	for {
		alias, ok := p.parseAlias()
		if !ok {
			p.sync()
			return nil
		}
		names = append(names, alias)
		if p.curToken.Type != token.COMMA {
			break
		}
		p.nextToken()
	}
	p.endSimple()
	return &ast.ImportFrom{Token: fromTok, Module: module, ModuleSpan: moduleSpan, Names: names}
}

// parseAlias parses `dotted_name [as NAME]`.
func (p *Parser) parseAlias() (*ast.Alias, bool) {
	name, span, ok := p.parseDottedName()
	if !ok {
		return nil, false
	}
	alias := &ast.Alias{Name: name, NameSpan: span}
	if p.curToken.Type == token.AS {
		p.nextToken()
		asTok, ok := p.expect(token.IDENT)
		if !ok {
			return nil, false
		}
		alias.AsName = &ast.Name{Token: asTok, Value: asTok.Lexeme, Ctx: ast.Store}
	}
	return alias, true
}

func (p *Parser) parseDottedName() (string, token.Span, bool) {
	first, ok := p.expect(token.IDENT)
	if !ok {
		return "", token.Span{}, false
	}
	name := first.Lexeme
	span := first.Span()
	for p.curToken.Type == token.DOT && p.peekToken.Type == token.IDENT {
		p.nextToken()
		part := p.curToken
		p.nextToken()
		name += "." + part.Lexeme
		span = token.Cover(span, part.Span())
	}
	return name, span, true
}
