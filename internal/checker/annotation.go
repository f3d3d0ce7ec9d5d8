package checker

import (
	"fmt"

	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/scope"
	"github.com/funvibe/pyvet/internal/token"
	"github.com/funvibe/pyvet/internal/types"
)

// The annotation interpreter is two-staged because Union, Literal and Tuple
// are not types on their own: they only become one once applied to type
// arguments via subscript. Stage one builds annotation values, stage two
// (verify) lowers them to types.

type partialKind int

const (
	partialUnion partialKind = iota
	partialLiteral
	partialTuple
)

func (k partialKind) String() string {
	switch k {
	case partialUnion:
		return "Union"
	case partialLiteral:
		return "Literal"
	default:
		return "tuple"
	}
}

type annotation interface {
	annSpan() token.Span
}

// rangedType is a fully realised type with the span it came from.
type rangedType struct {
	span  token.Span
	value types.Type
}

func (r rangedType) annSpan() token.Span { return r.span }

// partialAnnotation is a type constructor waiting for its arguments.
type partialAnnotation struct {
	span token.Span
	kind partialKind
	args []annotation
}

func (p *partialAnnotation) annSpan() token.Span { return p.span }

var annotationAtoms = map[string]types.Type{
	"Any":     types.Any,
	"Unknown": types.Unknown,
	"str":     types.Str,
	"int":     types.Int,
	"float":   types.Float,
	"bool":    types.Bool,
	"None":    types.None,
	"...":     types.Ellipsis,
}

// SynthAnnotation resolves a type-level expression to a type. A nil
// expression means no annotation and yields Unknown. Reported failures
// degrade to Unknown and do not unwind; unsupported expression shapes
// (bytes literals and any unhandled node) panic.
func SynthAnnotation(info *Info, sc *scope.Scope, expr ast.Expression) types.Type {
	ann, ok := synthAnnotationExpr(info, sc, expr)
	if !ok {
		return types.Unknown
	}
	typ, diag := verifyAnnotation(ann)
	if diag != nil {
		info.Reporter.Add(diag)
		return types.Unknown
	}
	return typ
}

func synthAnnotationExpr(info *Info, sc *scope.Scope, expr ast.Expression) (annotation, bool) {
	if expr == nil {
		return rangedType{value: types.Unknown}, true
	}

	switch x := expr.(type) {
	case *ast.Subscript:
		base, ok := synthAnnotationExpr(info, sc, x.Value)
		if !ok {
			return nil, false
		}
		partial, ok := base.(*partialAnnotation)
		if !ok {
			typ := base.(rangedType)
			info.Reporter.Error(
				fmt.Sprintf("Type %s doesn't support type arguments.", typ.value),
				x.Value.Span())
			return nil, false
		}
		if tuple, ok := x.Slice.(*ast.TupleExpr); ok {
			for _, elem := range tuple.Elements {
				arg, ok := synthAnnotationExpr(info, sc, elem)
				if !ok {
					return nil, false
				}
				partial.args = append(partial.args, arg)
			}
		} else {
			arg, ok := synthAnnotationExpr(info, sc, x.Slice)
			if !ok {
				return nil, false
			}
			partial.args = append(partial.args, arg)
		}
		return partial, true

	case *ast.Paren:
		return synthAnnotationExpr(info, sc, x.Inner)

	case *ast.Name:
		span := x.Span()
		if scoped, ok := sc.Get(x.Value); ok {
			return rangedType{span: span, value: scoped.Typ}, true
		}
		switch x.Value {
		case "Union":
			return &partialAnnotation{span: span, kind: partialUnion}, true
		case "Literal":
			return &partialAnnotation{span: span, kind: partialLiteral}, true
		case "Tuple", "tuple":
			return &partialAnnotation{span: span, kind: partialTuple}, true
		}
		if atom, ok := annotationAtoms[x.Value]; ok {
			return rangedType{span: span, value: atom}, true
		}
		info.Reporter.Add(diagnostics.NewNotInScope(x.Value, span))
		return nil, false

	case *ast.StringLiteral:
		return rangedType{span: x.Span(),
			value: types.TLiteral{Value: types.StringLiteral(x.Value)}}, true
	case *ast.BytesLiteral:
		panic("Bytes literal not supported.")
	case *ast.IntegerLiteral:
		return rangedType{span: x.Span(),
			value: types.TLiteral{Value: types.IntLiteral(x.Value)}}, true
	case *ast.FloatLiteral:
		return rangedType{span: x.Span(),
			value: types.TLiteral{Value: types.FloatLiteral(x.Value)}}, true
	case *ast.BooleanLiteral:
		return rangedType{span: x.Span(),
			value: types.TLiteral{Value: types.BoolLiteral(x.Value)}}, true
	case *ast.NoneLiteral:
		return rangedType{span: x.Span(),
			value: types.TLiteral{Value: types.NoneLiteral()}}, true
	case *ast.EllipsisLiteral:
		return rangedType{span: x.Span(),
			value: types.TLiteral{Value: types.EllipsisLiteral()}}, true
	}

	panic(fmt.Sprintf("Unknown expression for annotation: %T", expr))
}

func verifyAnnotation(ann annotation) (types.Type, diagnostics.Diag) {
	switch x := ann.(type) {
	case rangedType:
		return x.value, nil
	case *partialAnnotation:
		switch x.kind {
		case partialUnion:
			members, diag := verifyEach(x.args)
			if diag != nil {
				return nil, diag
			}
			return types.Union(members), nil
		case partialLiteral:
			literals := make([]types.Type, 0, len(x.args))
			for _, arg := range x.args {
				switch a := arg.(type) {
				case rangedType:
					if lit, ok := a.value.(types.TLiteral); ok {
						literals = append(literals, lit)
						continue
					}
					return nil, diagnostics.NewError(
						fmt.Sprintf("Expecting literal, found %s", a.value), a.span)
				case *partialAnnotation:
					return nil, diagnostics.NewError(
						fmt.Sprintf("Expecting literal, found %s", a.kind), a.span)
				}
			}
			return types.Union(literals), nil
		default:
			elems, diag := verifyEach(x.args)
			if diag != nil {
				return nil, diag
			}
			return types.TTuple{Elements: elems}, nil
		}
	}
	panic(fmt.Sprintf("unknown annotation %T", ann))
}

func verifyEach(args []annotation) ([]types.Type, diagnostics.Diag) {
	out := make([]types.Type, 0, len(args))
	for _, arg := range args {
		typ, diag := verifyAnnotation(arg)
		if diag != nil {
			return nil, diag
		}
		out = append(out, typ)
	}
	return out, nil
}
