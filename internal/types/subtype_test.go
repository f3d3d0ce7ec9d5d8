package types

import (
	"testing"
)

func lit(v Literal) TLiteral {
	return TLiteral{Value: v}
}

func TestSubtypeReflexivity(t *testing.T) {
	closed := []Type{
		Any, Unknown, Never, Str, Int, Float, Bool, None, Ellipsis,
		lit(IntLiteral(1)),
		lit(StringLiteral("a")),
		lit(FloatLiteral("0.5")),
		TTuple{Elements: []Type{Int, Str}},
		NewFunc([]Type{Int}, []string{"x"}, Str),
		Union([]Type{Str, Int}),
		NewClass("C", nil, nil),
		TModule{Name: "sys", Bindings: map[string]ScopedType{}},
	}
	for _, typ := range closed {
		if !IsSubtype(typ, typ) {
			t.Errorf("IsSubtype(%s, %s) = false, want true", typ, typ)
		}
	}
}

func TestSubtypeRules(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"Int <= Float", Int, Float, true},
		{"Float <= Int", Float, Int, false},
		{"Int literal <= Int", lit(IntLiteral(3)), Int, true},
		{"Int literal <= Float", lit(IntLiteral(3)), Float, true},
		{"String literal <= Str", lit(StringLiteral("a")), Str, true},
		{"String literal <= Int", lit(StringLiteral("a")), Int, false},
		{"Bool literal <= Bool", lit(BoolLiteral(true)), Bool, true},
		{"Bool <= Int", Bool, Int, false},
		{"Any <= Int", Any, Int, true},
		{"Int <= Any", Int, Any, true},
		{"Unknown <= Str", Unknown, Str, true},
		{"Str <= Unknown", Str, Unknown, true},
		{"Never <= Never", Never, Never, true},
		{"Never <= Int", Never, Int, false},
		{"Union lhs all members", Union([]Type{lit(StringLiteral("a")), lit(StringLiteral("b"))}), Str, true},
		{"Union lhs one member fails", Union([]Type{Str, Int}), Str, false},
		{"Union rhs some member", Str, Union([]Type{Str, Int}), true},
		{"Union rhs no member", Bool, Union([]Type{Str, Int}), false},
		{
			"Function contravariant params covariant return",
			NewFunc([]Type{Float}, []string{"x"}, Int),
			NewFunc([]Type{Int}, []string{"y"}, Float),
			true,
		},
		{
			"Function variance reversed",
			NewFunc([]Type{Int}, []string{"x"}, Float),
			NewFunc([]Type{Float}, []string{"y"}, Int),
			false,
		},
		{
			"Function arity mismatch",
			NewFunc([]Type{Int, Int}, []string{"x", "y"}, Int),
			NewFunc([]Type{Int}, []string{"x"}, Int),
			false,
		},
		{
			"Param names irrelevant",
			NewFunc([]Type{Int}, []string{"x"}, Str),
			NewFunc([]Type{Int}, []string{"renamed"}, Str),
			true,
		},
		{
			"Tuple covariant elements",
			TTuple{Elements: []Type{lit(IntLiteral(1)), Int}},
			TTuple{Elements: []Type{Int, Float}},
			true,
		},
		{
			"Tuple length mismatch",
			TTuple{Elements: []Type{Int}},
			TTuple{Elements: []Type{Int, Int}},
			false,
		},
		{"Tuple vs atom", TTuple{Elements: []Type{Int}}, Int, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSubtype(tt.a, tt.b); got != tt.want {
				t.Errorf("IsSubtype(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Transitivity holds for chains that avoid the gradual types, which are top
// and bottom at once.
func TestSubtypeTransitivity(t *testing.T) {
	chains := [][3]Type{
		{lit(IntLiteral(1)), Int, Float},
		{Int, Float, Union([]Type{Float, Str})},
		{lit(StringLiteral("x")), Str, Union([]Type{Str, None})},
	}
	for _, chain := range chains {
		a, b, c := chain[0], chain[1], chain[2]
		if !IsSubtype(a, b) || !IsSubtype(b, c) {
			t.Fatalf("premise failed for %s <= %s <= %s", a, b, c)
		}
		if !IsSubtype(a, c) {
			t.Errorf("IsSubtype(%s, %s) = false, want true by transitivity", a, c)
		}
	}
}
