package types

// Equal reports structural equality of two types. Partial functions compare
// by identity: they exist only transiently inside the statement checker.
func Equal(a, b Type) bool {
	switch x := a.(type) {
	case TAtom:
		y, ok := b.(TAtom)
		return ok && x == y
	case TLiteral:
		y, ok := b.(TLiteral)
		return ok && x.Value == y.Value
	case TTuple:
		y, ok := b.(TTuple)
		return ok && typesEqual(x.Elements, y.Elements)
	case TUnion:
		y, ok := b.(TUnion)
		return ok && typesEqual(x.Types, y.Types)
	case TFunc:
		y, ok := b.(TFunc)
		return ok && funcEqual(x, y)
	case *TPartialFunc:
		y, ok := b.(*TPartialFunc)
		return ok && x == y
	case TClass:
		y, ok := b.(TClass)
		if !ok || x.Name != y.Name {
			return false
		}
		if len(x.Methods) != len(y.Methods) || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Methods {
			if !funcEqual(x.Methods[i], y.Methods[i]) {
				return false
			}
		}
		for i := range x.Fields {
			if x.Fields[i].Name != y.Fields[i].Name || !Equal(x.Fields[i].Typ, y.Fields[i].Typ) {
				return false
			}
		}
		return true
	case TModule:
		y, ok := b.(TModule)
		if !ok || x.Name != y.Name || len(x.Bindings) != len(y.Bindings) {
			return false
		}
		for name, xv := range x.Bindings {
			yv, ok := y.Bindings[name]
			if !ok || xv.Locked != yv.Locked || !Equal(xv.Typ, yv.Typ) {
				return false
			}
		}
		return true
	}
	return false
}

func typesEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func funcEqual(a, b TFunc) bool {
	if len(a.ParamNames) != len(b.ParamNames) {
		return false
	}
	for i := range a.ParamNames {
		if a.ParamNames[i] != b.ParamNames[i] {
			return false
		}
	}
	return typesEqual(a.Params, b.Params) && Equal(a.Return, b.Return)
}
