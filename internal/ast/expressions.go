package ast

import (
	"github.com/funvibe/pyvet/internal/token"
)

// ExprContext distinguishes how a Name is being used.
type ExprContext int

const (
	Load ExprContext = iota
	Store
)

// Name represents an identifier reference.
type Name struct {
	Token token.Token
	Value string
	Ctx   ExprContext
}

func (n *Name) expressionNode()      {}
func (n *Name) TokenLiteral() string { return n.Token.Lexeme }
func (n *Name) Span() token.Span     { return n.Token.Span() }

// NoneLiteral represents the None literal.
type NoneLiteral struct {
	Token token.Token
}

func (n *NoneLiteral) expressionNode()      {}
func (n *NoneLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *NoneLiteral) Span() token.Span     { return n.Token.Span() }

// BooleanLiteral represents True or False.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Lexeme }
func (b *BooleanLiteral) Span() token.Span     { return b.Token.Span() }

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (i *IntegerLiteral) expressionNode()      {}
func (i *IntegerLiteral) TokenLiteral() string { return i.Token.Lexeme }
func (i *IntegerLiteral) Span() token.Span     { return i.Token.Span() }

// FloatLiteral represents a floating point literal. Value keeps the exact
// source spelling; the type lattice compares float literals textually.
type FloatLiteral struct {
	Token token.Token
	Value string
}

func (f *FloatLiteral) expressionNode()      {}
func (f *FloatLiteral) TokenLiteral() string { return f.Token.Lexeme }
func (f *FloatLiteral) Span() token.Span     { return f.Token.Span() }

// StringLiteral represents a string literal, with quotes stripped and
// escapes decoded.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Lexeme }
func (s *StringLiteral) Span() token.Span     { return s.Token.Span() }

// BytesLiteral represents a bytes literal, e.g. b"abc".
type BytesLiteral struct {
	Token token.Token
	Value string // decoded content, kept as a string for comparability
}

func (b *BytesLiteral) expressionNode()      {}
func (b *BytesLiteral) TokenLiteral() string { return b.Token.Lexeme }
func (b *BytesLiteral) Span() token.Span     { return b.Token.Span() }

// EllipsisLiteral represents the ... literal.
type EllipsisLiteral struct {
	Token token.Token
}

func (e *EllipsisLiteral) expressionNode()      {}
func (e *EllipsisLiteral) TokenLiteral() string { return e.Token.Lexeme }
func (e *EllipsisLiteral) Span() token.Span     { return e.Token.Span() }

// Attribute represents value.attr access.
type Attribute struct {
	Value Expression
	Attr  *Name
}

func (a *Attribute) expressionNode()      {}
func (a *Attribute) TokenLiteral() string { return a.Value.TokenLiteral() }
func (a *Attribute) Span() token.Span {
	return token.Cover(a.Value.Span(), a.Attr.Span())
}

// Subscript represents value[slice]. A multi-element slice is a Tuple.
type Subscript struct {
	Value Expression
	Slice Expression
	End   int // byte offset just past the closing bracket
}

func (s *Subscript) expressionNode()      {}
func (s *Subscript) TokenLiteral() string { return s.Value.TokenLiteral() }
func (s *Subscript) Span() token.Span {
	return token.Span{Start: s.Value.Span().Start, End: s.End}
}

// TupleExpr represents a tuple, parenthesized or bare.
type TupleExpr struct {
	Start    int
	EndPos   int
	Elements []Expression
}

func (t *TupleExpr) expressionNode() {}
func (t *TupleExpr) TokenLiteral() string {
	if len(t.Elements) > 0 {
		return t.Elements[0].TokenLiteral()
	}
	return "()"
}
func (t *TupleExpr) Span() token.Span { return token.Span{Start: t.Start, End: t.EndPos} }

// Call represents func(args...). Only positional arguments are supported.
type Call struct {
	Func Expression
	Args []Expression
	End  int // byte offset just past the closing paren
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Func.TokenLiteral() }
func (c *Call) Span() token.Span {
	return token.Span{Start: c.Func.Span().Start, End: c.End}
}

// Paren is a parenthesized expression. It exists so spans cover the
// enclosing parentheses; the checker looks through it.
type Paren struct {
	Start  int
	EndPos int
	Inner  Expression
}

func (p *Paren) expressionNode()      {}
func (p *Paren) TokenLiteral() string { return p.Inner.TokenLiteral() }
func (p *Paren) Span() token.Span     { return token.Span{Start: p.Start, End: p.EndPos} }

// Lambda represents a lambda expression. Lambda parameters carry no
// annotations in the surface syntax; Param.Annotation stays nil.
type Lambda struct {
	Token  token.Token // the 'lambda' token
	Params []*Param
	Body   Expression
}

func (l *Lambda) expressionNode()      {}
func (l *Lambda) TokenLiteral() string { return l.Token.Lexeme }
func (l *Lambda) Span() token.Span {
	return token.Cover(l.Token.Span(), l.Body.Span())
}
