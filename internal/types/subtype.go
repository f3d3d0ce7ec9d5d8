package types

// IsSubtype reports whether a value statically of type a can be used
// wherever b is expected. The rules are ordered; the first match wins.
func IsSubtype(a, b Type) bool {
	if Equal(a, b) {
		return true
	}

	// A literal behaves like its underlying atom against everything that is
	// not the identical literal.
	if l, ok := a.(TLiteral); ok {
		return IsSubtype(l.Value.atom(), b)
	}

	// Any and Unknown sit at the top and the bottom of the lattice at once:
	// no error is ever raised at a gradual boundary.
	if isGradual(a) || isGradual(b) {
		return true
	}

	if ax, ok := a.(TAtom); ok {
		if bx, ok := b.(TAtom); ok && ax == Int && bx == Float {
			return true
		}
	}

	// Never is assignable to nothing beyond itself and the gradual types;
	// structural equality already handled Never <= Never and the gradual
	// rule above handled Any/Unknown, so it falls through to false below.

	if u, ok := a.(TUnion); ok {
		for _, m := range u.Types {
			if !IsSubtype(m, b) {
				return false
			}
		}
		return true
	}
	if u, ok := b.(TUnion); ok {
		for _, m := range u.Types {
			if IsSubtype(a, m) {
				return true
			}
		}
		return false
	}

	if af, ok := a.(TFunc); ok {
		bf, ok := b.(TFunc)
		if !ok || len(af.Params) != len(bf.Params) {
			return false
		}
		for i := range af.Params {
			if !IsSubtype(bf.Params[i], af.Params[i]) {
				return false
			}
		}
		return IsSubtype(af.Return, bf.Return)
	}

	if at, ok := a.(TTuple); ok {
		bt, ok := b.(TTuple)
		if !ok || len(at.Elements) != len(bt.Elements) {
			return false
		}
		for i := range at.Elements {
			if !IsSubtype(at.Elements[i], bt.Elements[i]) {
				return false
			}
		}
		return true
	}

	return false
}

func isGradual(t Type) bool {
	a, ok := t.(TAtom)
	return ok && (a == Any || a == Unknown)
}
