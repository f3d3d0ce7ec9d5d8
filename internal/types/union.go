package types

// Union returns the normalized union of the given types: nested unions are
// flattened, members subsumed by another member are dropped, and small
// results collapse (zero members to Never, one member to itself).
// The output is deterministic; when two members are equivalent the first in
// input order is kept.
func Union(members []Type) Type {
	flat := flatten(members)
	kept := collapseSubtypes(flat)

	switch len(kept) {
	case 0:
		return Never
	case 1:
		return kept[0]
	default:
		return TUnion{Types: kept}
	}
}

func flatten(members []Type) []Type {
	out := make([]Type, 0, len(members))
	for _, t := range members {
		if u, ok := t.(TUnion); ok {
			out = append(out, u.Types...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

func collapseSubtypes(members []Type) []Type {
	kept := make([]Type, 0, len(members))
	for i1, t1 := range members {
		keep := true
		for i2, t2 := range members {
			if i1 == i2 {
				continue
			}
			// An arm is dropped when it is a strict subtype of another arm,
			// or when it is equivalent to an earlier arm.
			if IsSubtype(t1, t2) && !(IsSubtype(t2, t1) && i1 < i2) {
				keep = false
				break
			}
		}
		if keep {
			kept = append(kept, t1)
		}
	}
	return kept
}
