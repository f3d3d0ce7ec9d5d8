package types

import (
	"testing"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"Any", Any, "Any"},
		{"Unknown", Unknown, "Unknown"},
		{"Never", Never, "Never"},
		{"Str", Str, "str"},
		{"Int", Int, "int"},
		{"Float", Float, "float"},
		{"Bool", Bool, "bool"},
		{"None", None, "None"},
		{"Ellipsis", Ellipsis, "..."},
		{"String literal", TLiteral{Value: StringLiteral("asdf")}, `Literal["asdf"]`},
		{"Bytes literal", TLiteral{Value: BytesLiteral("ab")}, `Literal[b"ab"]`},
		{"Int literal", TLiteral{Value: IntLiteral(5)}, "Literal[5]"},
		{"Float literal", TLiteral{Value: FloatLiteral("0.10")}, "Literal[0.10]"},
		{"True literal", TLiteral{Value: BoolLiteral(true)}, "Literal[True]"},
		{"False literal", TLiteral{Value: BoolLiteral(false)}, "Literal[False]"},
		{"None literal", TLiteral{Value: NoneLiteral()}, "Literal[None]"},
		{"Ellipsis literal", TLiteral{Value: EllipsisLiteral()}, "Literal[...]"},
		{
			"Tuple",
			TTuple{Elements: []Type{Int, TLiteral{Value: IntLiteral(3)}}},
			"tuple[int, Literal[3]]",
		},
		{
			"Function",
			NewFunc([]Type{Int, Str}, []string{"x", "y"}, Bool),
			"(x: int, y: str) -> bool",
		},
		{
			"Function no params",
			NewFunc(nil, nil, None),
			"() -> None",
		},
		{"Partial function", &TPartialFunc{}, "Partial Func"},
		{"Class", NewClass("Foo", nil, nil), "type[Foo]"},
		{"Module", TModule{Name: "sys"}, "module[sys]"},
		{
			"Union of literals",
			Union([]Type{TLiteral{Value: StringLiteral("a")}, TLiteral{Value: StringLiteral("b")}}),
			`Literal["a", "b"]`,
		},
		{
			"Mixed union",
			Union([]Type{Str, TLiteral{Value: IntLiteral(1)}}),
			"Union[str, Literal[1]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
