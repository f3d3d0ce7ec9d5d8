package types

import (
	"fmt"
	"strconv"
)

// LiteralKind discriminates the kinds of literal values.
type LiteralKind uint8

const (
	StringLit LiteralKind = iota
	BytesLit
	IntLit
	FloatLit
	BoolLit
	NoneLit
	EllipsisLit
)

// Literal is a single literal value. It is comparable and usable as a map
// key. Float literals carry their source spelling in Text, so 0.1 == 0.1
// holds by spelling rather than by float arithmetic. Text also holds string
// and bytes contents.
type Literal struct {
	Kind LiteralKind
	Text string
	Int  int64
	Bool bool
}

func StringLiteral(s string) Literal {
	return Literal{Kind: StringLit, Text: s}
}

func BytesLiteral(b string) Literal {
	return Literal{Kind: BytesLit, Text: b}
}

func IntLiteral(i int64) Literal {
	return Literal{Kind: IntLit, Int: i}
}

func FloatLiteral(text string) Literal {
	return Literal{Kind: FloatLit, Text: text}
}

func BoolLiteral(b bool) Literal {
	return Literal{Kind: BoolLit, Bool: b}
}

func NoneLiteral() Literal {
	return Literal{Kind: NoneLit}
}

func EllipsisLiteral() Literal {
	return Literal{Kind: EllipsisLit}
}

// display renders the literal value as it appears inside Literal[...].
func (l Literal) display() string {
	switch l.Kind {
	case StringLit:
		return strconv.Quote(l.Text)
	case BytesLit:
		return "b" + strconv.Quote(l.Text)
	case IntLit:
		return strconv.FormatInt(l.Int, 10)
	case FloatLit:
		return l.Text
	case BoolLit:
		if l.Bool {
			return "True"
		}
		return "False"
	case NoneLit:
		return "None"
	case EllipsisLit:
		return "..."
	}
	return fmt.Sprintf("Literal(%d)", l.Kind)
}

func (l Literal) String() string {
	return "Literal[" + l.display() + "]"
}

// atom returns the underlying atom of the literal's value.
// Bytes literals have no atom in the lattice.
func (l Literal) atom() TAtom {
	switch l.Kind {
	case StringLit:
		return Str
	case IntLit:
		return Int
	case FloatLit:
		return Float
	case BoolLit:
		return Bool
	case NoneLit:
		return None
	case EllipsisLit:
		return Ellipsis
	}
	panic(fmt.Sprintf("literal kind %d has no underlying atom", l.Kind))
}
