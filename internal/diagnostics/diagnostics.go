package diagnostics

import (
	"fmt"

	"github.com/funvibe/pyvet/internal/token"
)

// Kind is the severity of a diagnostic.
type Kind int

const (
	Info Kind = iota
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diag is a single finding with a source span. Implementations carry their
// structured payload and compare structurally, so tests can assert exact
// reporter contents.
type Diag interface {
	Kind() Kind
	Span() token.Span
	Message() string
	Equal(other Diag) bool
}

// Diagnostic is the generic string-bodied diagnostic.
type Diagnostic struct {
	Body  string
	Typ   Kind
	Range token.Span
}

func New(body string, kind Kind, span token.Span) *Diagnostic {
	return &Diagnostic{Body: body, Typ: kind, Range: span}
}

func NewError(body string, span token.Span) *Diagnostic {
	return New(body, Error, span)
}

func NewWarning(body string, span token.Span) *Diagnostic {
	return New(body, Warning, span)
}

func NewInfo(body string, span token.Span) *Diagnostic {
	return New(body, Info, span)
}

func (d *Diagnostic) Kind() Kind       { return d.Typ }
func (d *Diagnostic) Span() token.Span { return d.Range }
func (d *Diagnostic) Message() string  { return d.Body }

func (d *Diagnostic) Equal(other Diag) bool {
	o, ok := other.(*Diagnostic)
	return ok && d.Body == o.Body && d.Typ == o.Typ && d.Range == o.Range
}
