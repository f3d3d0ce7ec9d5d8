package checker

import (
	"fmt"

	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/scope"
	"github.com/funvibe/pyvet/internal/types"
)

// Synth infers the type of an expression. The checker is partial by
// design: expression shapes outside the supported subset panic.
func Synth(info *Info, sc *scope.Scope, expr ast.Expression) types.Type {
	switch x := expr.(type) {
	case *ast.NoneLiteral:
		return types.None
	case *ast.BooleanLiteral:
		return types.TLiteral{Value: types.BoolLiteral(x.Value)}
	case *ast.IntegerLiteral:
		return types.TLiteral{Value: types.IntLiteral(x.Value)}
	case *ast.FloatLiteral:
		return types.TLiteral{Value: types.FloatLiteral(x.Value)}
	case *ast.StringLiteral:
		return types.TLiteral{Value: types.StringLiteral(x.Value)}

	case *ast.Paren:
		return Synth(info, sc, x.Inner)

	case *ast.Name:
		if x.Ctx != ast.Load {
			break
		}
		if scoped, ok := sc.Get(x.Value); ok {
			return scoped.Typ
		}
		info.Reporter.Add(diagnostics.NewNotInScope(x.Value, x.Span()))
		return types.Unknown

	case *ast.Lambda:
		params := make([]types.Type, 0, len(x.Params))
		paramNames := make([]string, 0, len(x.Params))
		sc.Push()
		for _, param := range x.Params {
			ann := types.Type(types.Unknown)
			if param.Annotation != nil {
				ann = SynthAnnotation(info, sc, param.Annotation)
			}
			params = append(params, ann)
			paramNames = append(paramNames, param.Name.Value)
			sc.Set(param.Name.Value, types.NewScoped(ann))
		}
		ret := Synth(info, sc, x.Body)
		sc.Pop()
		return types.NewFunc(params, paramNames, ret)

	case *ast.Call:
		// Early handling for reveal_type
		if name, ok := x.Func.(*ast.Name); ok && name.Value == "reveal_type" {
			if len(x.Args) == 0 {
				panic("reveal_type call without an argument")
			}
			arg := x.Args[0]
			typ := Synth(info, sc, arg)
			info.Reporter.Add(diagnostics.NewRevealType(typ, arg.Span()))
			return types.Unknown
		}

		calleeType := Synth(info, sc, x.Func)
		callee, ok := calleeType.(types.TFunc)
		if !ok {
			info.Reporter.Error(fmt.Sprintf("%s not callable", calleeType), x.Func.Span())
			return types.Unknown
		}
		if len(callee.Params) != len(x.Args) {
			info.Reporter.Error(
				fmt.Sprintf("expected %d args, got %d args", len(callee.Params), len(x.Args)),
				x.Span())
			return types.Unknown
		}
		for i, arg := range x.Args {
			Check(info, sc, arg, callee.Params[i])
		}
		return callee.Return

	case *ast.Attribute:
		value := Synth(info, sc, x.Value)
		module, ok := value.(types.TModule)
		if !ok {
			info.Reporter.Error(
				fmt.Sprintf("Unknown attribute %q for %s", x.Attr.Value, value), x.Span())
			return types.Unknown
		}
		if scoped, ok := module.Bindings[x.Attr.Value]; ok {
			return scoped.Typ
		}
		return types.Unknown

	case *ast.TupleExpr:
		elems := make([]types.Type, 0, len(x.Elements))
		for _, elem := range x.Elements {
			elems = append(elems, Synth(info, sc, elem))
		}
		return types.TTuple{Elements: elems}
	}

	panic(fmt.Sprintf("Unknown expression for synth: %T", expr))
}

// Check synthesizes the expression and tests it against the expected type.
// On failure an expected-but-got diagnostic is reported on the expression's
// span and the degraded type Unknown is returned with ok=false.
func Check(info *Info, sc *scope.Scope, expr ast.Expression, expected types.Type) (types.Type, bool) {
	span := expr.Span()
	synthType := Synth(info, sc, expr)
	if types.IsSubtype(synthType, expected) {
		return synthType, true
	}
	info.Reporter.Add(diagnostics.NewExpectedButGot(expected, synthType, span))
	return types.Unknown, false
}
