package types

import (
	"fmt"
	"strings"

	"github.com/funvibe/pyvet/internal/ast"
)

// Type is the interface for all types in the lattice. Types are immutable
// values; many sites hold references to the same type without copying.
type Type interface {
	String() string
	typeNode()
}

// TAtom is a nullary type: one of the fixed atoms of the lattice.
type TAtom uint8

const (
	Any TAtom = iota
	Unknown
	Never
	Str
	Int
	Float
	Bool
	None
	Ellipsis
)

// Default is the type used when nothing better is known.
const Default = Unknown

func (t TAtom) typeNode() {}

func (t TAtom) String() string {
	switch t {
	case Any:
		return "Any"
	case Unknown:
		return "Unknown"
	case Never:
		return "Never"
	case Str:
		return "str"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case None:
		return "None"
	case Ellipsis:
		return "..."
	}
	return fmt.Sprintf("TAtom(%d)", uint8(t))
}

// TLiteral is a singleton type inhabited by exactly one value.
type TLiteral struct {
	Value Literal
}

func (t TLiteral) typeNode() {}

func (t TLiteral) String() string {
	return "Literal[" + t.Value.display() + "]"
}

// TTuple is a fixed-arity positional tuple type.
type TTuple struct {
	Elements []Type
}

func (t TTuple) typeNode() {}

func (t TTuple) String() string {
	return "tuple[" + joinTypes(t.Elements) + "]"
}

// TFunc is a callable type with positional parameters only.
type TFunc struct {
	Params     []Type
	ParamNames []string
	Return     Type
}

func NewFunc(params []Type, paramNames []string, ret Type) TFunc {
	return TFunc{Params: params, ParamNames: paramNames, Return: ret}
}

func (t TFunc) typeNode() {}

func (t TFunc) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.ParamNames[i])
		sb.WriteString(": ")
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(t.Return.String())
	return sb.String()
}

// TPartialFunc is the placeholder type of a function whose body has not been
// fully walked yet. It refers back to the raw AST. The statement checker
// binds a function's name only after its body has been walked, so the body
// cannot reach the function through this placeholder. Nil fields are unset.
type TPartialFunc struct {
	Def        *ast.FunctionDef
	Params     []Type
	ParamNames []string
	Return     Type
}

func (t *TPartialFunc) typeNode() {}

func (t *TPartialFunc) String() string { return "Partial Func" }

// Complete converts the partial into a TFunc once every field is known.
func (t *TPartialFunc) Complete() (TFunc, bool) {
	if t.Params == nil || t.ParamNames == nil || t.Return == nil {
		return TFunc{}, false
	}
	return TFunc{Params: t.Params, ParamNames: t.ParamNames, Return: t.Return}, true
}

// ClassField is a named attribute of a class.
type ClassField struct {
	Name string
	Typ  Type
}

// TClass is a concrete (non-parameterised) class type.
type TClass struct {
	Name    string
	Methods []TFunc
	Fields  []ClassField
}

func NewClass(name string, methods []TFunc, fields []ClassField) TClass {
	return TClass{Name: name, Methods: methods, Fields: fields}
}

func (t TClass) typeNode() {}

func (t TClass) String() string { return "type[" + t.Name + "]" }

// TModule is an imported module with its exported bindings.
type TModule struct {
	Name     string
	Bindings map[string]ScopedType
}

func (t TModule) typeNode() {}

func (t TModule) String() string { return "module[" + t.Name + "]" }

// TUnion is a normalized union: flat, deduplicated up to subtyping, and
// always at least two members. Construct through Union.
type TUnion struct {
	Types []Type
}

func (t TUnion) typeNode() {}

func (t TUnion) String() string {
	allLiterals := true
	for _, m := range t.Types {
		if _, ok := m.(TLiteral); !ok {
			allLiterals = false
			break
		}
	}
	var sb strings.Builder
	if allLiterals {
		sb.WriteString("Literal[")
		for i, m := range t.Types {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.(TLiteral).Value.display())
		}
	} else {
		sb.WriteString("Union[")
		sb.WriteString(joinTypes(t.Types))
	}
	sb.WriteString("]")
	return sb.String()
}

// ScopedType is a type as stored in a scope frame. Locked marks a binding
// introduced by an explicit annotation, which may not be re-annotated.
type ScopedType struct {
	Typ    Type
	Locked bool
}

func NewScoped(t Type) ScopedType {
	return ScopedType{Typ: t}
}

func NewLocked(t Type) ScopedType {
	return ScopedType{Typ: t, Locked: true}
}

func joinTypes(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
