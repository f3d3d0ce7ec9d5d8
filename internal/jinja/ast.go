package jinja

import "github.com/funvibe/pyvet/internal/token"

// Statement is a single template construct.
type Statement interface {
	statementNode()
	Span() token.Span
}

// Expression is a {{ ... }} output island.
type Expression struct {
	Range   token.Span
	Tokens  []Token // tokens between the delimiters
	Filters []string
}

func (e *Expression) statementNode()   {}
func (e *Expression) Span() token.Span { return e.Range }

// Block is a {% ... %} statement island. The leading Name token selects
// the construct (for, if, macro, set, ...).
type Block struct {
	Range  token.Span
	Head   string
	Tokens []Token
}

func (b *Block) statementNode()   {}
func (b *Block) Span() token.Span { return b.Range }
