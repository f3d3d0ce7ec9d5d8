package ast

import (
	"github.com/funvibe/pyvet/internal/token"
)

// Node is the base interface for all AST nodes. Every node knows the byte
// span it covers in the original source.
type Node interface {
	Span() token.Span
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Module is the root node of every parsed file.
type Module struct {
	File       string
	Statements []Statement
}

func (m *Module) Span() token.Span {
	if len(m.Statements) == 0 {
		return token.Span{}
	}
	return token.Cover(m.Statements[0].Span(), m.Statements[len(m.Statements)-1].Span())
}

func (m *Module) TokenLiteral() string {
	if len(m.Statements) > 0 {
		return m.Statements[0].TokenLiteral()
	}
	return ""
}

// Assign represents a plain assignment: a = b = value
type Assign struct {
	Targets []Expression
	Value   Expression
}

func (a *Assign) statementNode()       {}
func (a *Assign) TokenLiteral() string { return a.Targets[0].TokenLiteral() }
func (a *Assign) Span() token.Span {
	return token.Cover(a.Targets[0].Span(), a.Value.Span())
}

// AnnAssign represents an annotated assignment: target: annotation = value
// Value is nil for a bare declaration.
type AnnAssign struct {
	Target     Expression
	Annotation Expression
	Value      Expression
}

func (a *AnnAssign) statementNode()       {}
func (a *AnnAssign) TokenLiteral() string { return a.Target.TokenLiteral() }
func (a *AnnAssign) Span() token.Span {
	end := a.Annotation.Span()
	if a.Value != nil {
		end = a.Value.Span()
	}
	return token.Cover(a.Target.Span(), end)
}

// ExprStmt is an expression evaluated for effect at statement position.
type ExprStmt struct {
	Value Expression
}

func (e *ExprStmt) statementNode()       {}
func (e *ExprStmt) TokenLiteral() string { return e.Value.TokenLiteral() }
func (e *ExprStmt) Span() token.Span     { return e.Value.Span() }

// Return represents a return statement, with an optional value.
type Return struct {
	Token token.Token // the 'return' token
	Value Expression
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return r.Token.Lexeme }
func (r *Return) Span() token.Span {
	if r.Value == nil {
		return r.Token.Span()
	}
	return token.Cover(r.Token.Span(), r.Value.Span())
}

// Param is a single function or lambda parameter.
type Param struct {
	Name       *Name
	Annotation Expression // nil when unannotated
	Default    Expression // nil when no default
}

func (p *Param) Span() token.Span {
	out := p.Name.Span()
	if p.Annotation != nil {
		out = token.Cover(out, p.Annotation.Span())
	}
	if p.Default != nil {
		out = token.Cover(out, p.Default.Span())
	}
	return out
}

// FunctionDef represents a def statement.
type FunctionDef struct {
	Token   token.Token // the 'def' token
	Name    *Name
	Params  []*Param
	Returns Expression // nil when no return annotation
	Body    []Statement
}

func (f *FunctionDef) statementNode()       {}
func (f *FunctionDef) TokenLiteral() string { return f.Token.Lexeme }
func (f *FunctionDef) Span() token.Span {
	out := f.Token.Span()
	if len(f.Body) > 0 {
		out = token.Cover(out, f.Body[len(f.Body)-1].Span())
	}
	return out
}

// ClassDef represents a class statement. Bases are parsed but the checker
// does not analyse them.
type ClassDef struct {
	Token token.Token // the 'class' token
	Name  *Name
	Bases []Expression
	Body  []Statement
}

func (c *ClassDef) statementNode()       {}
func (c *ClassDef) TokenLiteral() string { return c.Token.Lexeme }
func (c *ClassDef) Span() token.Span {
	out := c.Token.Span()
	if len(c.Body) > 0 {
		out = token.Cover(out, c.Body[len(c.Body)-1].Span())
	}
	return out
}

// Pass represents a pass statement.
type Pass struct {
	Token token.Token
}

func (p *Pass) statementNode()       {}
func (p *Pass) TokenLiteral() string { return p.Token.Lexeme }
func (p *Pass) Span() token.Span     { return p.Token.Span() }

// Alias is one imported name, with an optional binding alias.
// Covers both `import a` and `from m import a as b` forms.
type Alias struct {
	Name     string // possibly dotted for plain imports
	NameSpan token.Span
	AsName   *Name // nil when unaliased
}

func (a *Alias) Span() token.Span {
	if a.AsName == nil {
		return a.NameSpan
	}
	return token.Cover(a.NameSpan, a.AsName.Span())
}

// Import represents `import m [as n], ...`.
type Import struct {
	Token token.Token // the 'import' token
	Names []*Alias
}

func (i *Import) statementNode()       {}
func (i *Import) TokenLiteral() string { return i.Token.Lexeme }
func (i *Import) Span() token.Span {
	out := i.Token.Span()
	if len(i.Names) > 0 {
		out = token.Cover(out, i.Names[len(i.Names)-1].Span())
	}
	return out
}

// ImportFrom represents `from m import x [as n], ...`.
type ImportFrom struct {
	Token      token.Token // the 'from' token
	Module     string
	ModuleSpan token.Span
	Names      []*Alias
}

func (i *ImportFrom) statementNode()       {}
func (i *ImportFrom) TokenLiteral() string { return i.Token.Lexeme }
func (i *ImportFrom) Span() token.Span {
	out := i.Token.Span()
	if len(i.Names) > 0 {
		out = token.Cover(out, i.Names[len(i.Names)-1].Span())
	}
	return out
}
