package jinja

import "github.com/funvibe/pyvet/internal/token"

// TokenType identifies a token of the template expression language.
type TokenType int

const (
	Add TokenType = iota
	Assign
	Colon
	Comma
	Div
	Dot
	Eq
	Floordiv
	Gt
	Gteq
	Lbrace
	Lbracket
	Lparen
	Lt
	Lteq
	Mod
	Mul
	Ne
	Pipe
	Pow
	Rbrace
	Rbracket
	Rparen
	Semicolon
	Sub
	Tilde
	Float
	Integer
	Name
	String
	VariableBegin
	VariableEnd
	Comment
	StatementBegin
	StatementEnd
	Eof
)

// Token is a single template token with its byte span.
type Token struct {
	Type  TokenType
	Range token.Span
}
