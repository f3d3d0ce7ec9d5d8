package checker

import (
	"fmt"

	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/scope"
	"github.com/funvibe/pyvet/internal/types"
)

// CheckStatement walks a single statement. Statement shapes outside the
// supported subset panic; everything else reports through info.Reporter and
// continues with degraded types.
func CheckStatement(info *Info, data *StatementSynthData, sc *scope.Scope, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.AnnAssign:
		annotation := SynthAnnotation(info, sc, s.Annotation)
		if s.Value != nil {
			Check(info, sc, s.Value, annotation)
		}
		name, ok := s.Target.(*ast.Name)
		if !ok {
			panic(fmt.Sprintf("Node %T not expected in type assignment.", s.Target))
		}
		if prev, ok := sc.GetTop(name.Value); ok && prev.Locked {
			info.Reporter.Add(diagnostics.NewCantReassignLocked(
				prev.Typ, annotation, name.Value, s.Span()))
			return
		}
		sc.Set(name.Value, types.NewLocked(annotation))

	case *ast.Assign:
		for _, target := range s.Targets {
			name, ok := target.(*ast.Name)
			if !ok {
				panic(fmt.Sprintf("Node %T not expected in assignment.", target))
			}
			if prev, ok := sc.GetTop(name.Value); ok && prev.Locked {
				// The binding stays locked; a successful check stores the
				// checked type, a failed check leaves the binding untouched.
				if typ, ok := Check(info, sc, s.Value, prev.Typ); ok {
					sc.Set(name.Value, types.NewLocked(typ))
				}
			} else {
				sc.Set(name.Value, types.NewScoped(Synth(info, sc, s.Value)))
			}
		}

	case *ast.ExprStmt:
		Synth(info, sc, s.Value)

	case *ast.Return:
		if data.Returns == nil {
			info.Reporter.Error("Can't return outside of function.", s.Span())
			return
		}
		found := types.Type(types.None)
		if s.Value != nil {
			found, _ = Check(info, sc, s.Value, data.Returns.Annotation)
		}
		data.Returns.FoundTypes = append(data.Returns.FoundTypes, found)

	case *ast.FunctionDef:
		partial := &types.TPartialFunc{Def: s}
		checkFunc(info, data, sc, partial)
		if fn, ok := partial.Complete(); ok {
			sc.Set(s.Name.Value, types.NewScoped(fn))
		} else {
			data.PartialList = append(data.PartialList,
				PartialItem{File: info.FileName, Name: s.Name.Value})
			sc.Set(s.Name.Value, types.NewScoped(partial))
		}

	case *ast.ClassDef:
		sc.Set(s.Name.Value, types.NewScoped(types.NewClass(s.Name.Value, nil, nil)))

	case *ast.Pass:

	case *ast.Import:
		for _, alias := range s.Names {
			bindings := LoadModule(alias.Name)
			local := alias.Name
			if alias.AsName != nil {
				local = alias.AsName.Value
			}
			sc.Set(local, types.NewScoped(types.TModule{Name: local, Bindings: bindings}))
		}

	case *ast.ImportFrom:
		bindings := LoadModule(s.Module)
		for _, alias := range s.Names {
			scoped, ok := bindings[alias.Name]
			if !ok {
				info.Reporter.Add(diagnostics.NewNotInScope(alias.Name, alias.Span()))
				continue
			}
			local := alias.Name
			if alias.AsName != nil {
				local = alias.AsName.Value
			}
			sc.Set(local, scoped)
		}

	default:
		panic(fmt.Sprintf("Statement not yet supported: %T", stmt))
	}
}

// checkFunc walks a function definition. The partial's parameters are filled
// in, and its return set to Unknown, before the body is walked. The caller
// binds the function's name only after checkFunc returns, so a reference to
// that name inside the body resolves only to an outer binding, if any.
func checkFunc(info *Info, data *StatementSynthData, sc *scope.Scope, partial *types.TPartialFunc) {
	def := partial.Def
	expectedRet := SynthAnnotation(info, sc, def.Returns)

	sc.Push()
	params := make([]types.Type, 0, len(def.Params))
	paramNames := make([]string, 0, len(def.Params))
	for _, param := range def.Params {
		annotation := SynthAnnotation(info, sc, param.Annotation)
		paramType := annotation
		if param.Default != nil {
			// The default contributes to the parameter type; the body still
			// sees the annotation.
			checked, ok := Check(info, sc, param.Default, annotation)
			if ok {
				paramType = checked
			} else {
				paramType = types.Unknown
			}
		}
		params = append(params, paramType)
		paramNames = append(paramNames, param.Name.Value)
		sc.Set(param.Name.Value, types.NewScoped(annotation))
	}

	partial.Params = params
	partial.ParamNames = paramNames
	partial.Return = types.Unknown

	prev := data.Returns
	data.Returns = NewReturnData(expectedRet)

	for _, stmt := range def.Body {
		CheckStatement(info, data, sc, stmt)
	}

	finished := data.Returns
	data.Returns = prev
	partial.Return = types.Union(finished.FoundTypes)

	sc.Pop()
}
