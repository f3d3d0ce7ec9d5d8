package diagnostics

import (
	"fmt"

	"github.com/funvibe/pyvet/internal/token"
	"github.com/funvibe/pyvet/internal/types"
)

// RevealTypeDiag reports the inferred type of a reveal_type argument.
// Informational: it never counts towards the error total.
type RevealTypeDiag struct {
	Typ   types.Type
	Range token.Span
}

func NewRevealType(typ types.Type, span token.Span) *RevealTypeDiag {
	return &RevealTypeDiag{Typ: typ, Range: span}
}

func (d *RevealTypeDiag) Kind() Kind       { return Info }
func (d *RevealTypeDiag) Span() token.Span { return d.Range }

func (d *RevealTypeDiag) Message() string {
	return fmt.Sprintf("Type is %s", d.Typ)
}

func (d *RevealTypeDiag) Equal(other Diag) bool {
	o, ok := other.(*RevealTypeDiag)
	return ok && d.Range == o.Range && types.Equal(d.Typ, o.Typ)
}

// NotInScopeDiag reports a name lookup failure.
type NotInScopeDiag struct {
	Name  string
	Range token.Span
}

func NewNotInScope(name string, span token.Span) *NotInScopeDiag {
	return &NotInScopeDiag{Name: name, Range: span}
}

func (d *NotInScopeDiag) Kind() Kind       { return Error }
func (d *NotInScopeDiag) Span() token.Span { return d.Range }

func (d *NotInScopeDiag) Message() string {
	return fmt.Sprintf("Name %q not found in scope.", d.Name)
}

func (d *NotInScopeDiag) Equal(other Diag) bool {
	o, ok := other.(*NotInScopeDiag)
	return ok && d.Range == o.Range && d.Name == o.Name
}

// ExpectedButGotDiag reports a failed check against an expected type.
type ExpectedButGotDiag struct {
	Expected types.Type
	Got      types.Type
	Range    token.Span
}

func NewExpectedButGot(expected, got types.Type, span token.Span) *ExpectedButGotDiag {
	return &ExpectedButGotDiag{Expected: expected, Got: got, Range: span}
}

func (d *ExpectedButGotDiag) Kind() Kind       { return Error }
func (d *ExpectedButGotDiag) Span() token.Span { return d.Range }

func (d *ExpectedButGotDiag) Message() string {
	return fmt.Sprintf("Expected %s but found %s.", d.Expected, d.Got)
}

func (d *ExpectedButGotDiag) Equal(other Diag) bool {
	o, ok := other.(*ExpectedButGotDiag)
	return ok && d.Range == o.Range &&
		types.Equal(d.Expected, o.Expected) && types.Equal(d.Got, o.Got)
}

// CantReassignLockedDiag reports a re-annotation of a locked binding.
type CantReassignLockedDiag struct {
	Expected types.Type // the locked type
	Got      types.Type // the new annotation
	Name     string
	Range    token.Span
}

func NewCantReassignLocked(expected, got types.Type, name string, span token.Span) *CantReassignLockedDiag {
	return &CantReassignLockedDiag{Expected: expected, Got: got, Name: name, Range: span}
}

func (d *CantReassignLockedDiag) Kind() Kind       { return Error }
func (d *CantReassignLockedDiag) Span() token.Span { return d.Range }

func (d *CantReassignLockedDiag) Message() string {
	return fmt.Sprintf("%q is already defined as %s, can't redefine as %s as it was previously defined with a type hint, so it can't be redefined as a different type.",
		d.Name, d.Expected, d.Got)
}

func (d *CantReassignLockedDiag) Equal(other Diag) bool {
	o, ok := other.(*CantReassignLockedDiag)
	return ok && d.Range == o.Range && d.Name == o.Name &&
		types.Equal(d.Expected, o.Expected) && types.Equal(d.Got, o.Got)
}
