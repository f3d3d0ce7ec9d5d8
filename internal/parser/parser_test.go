package parser

import (
	"strings"
	"testing"

	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/lexer"
)

func parseModule(t *testing.T, input string) *ast.Module {
	t.Helper()
	p := New(lexer.New(input))
	mod := p.ParseModule()
	if errs := p.Errors(); len(errs) != 0 {
		for _, e := range errs {
			t.Logf("parse error: %s (%s)", e.Message(), e.Span())
		}
		t.Fatalf("ParseModule produced %d errors", len(errs))
	}
	return mod
}

func parseStatement(t *testing.T, input string) ast.Statement {
	t.Helper()
	mod := parseModule(t, input)
	if len(mod.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(mod.Statements))
	}
	return mod.Statements[0]
}

func TestAnnAssign(t *testing.T) {
	stmt := parseStatement(t, "a: int = 3\n")
	annAssign, ok := stmt.(*ast.AnnAssign)
	if !ok {
		t.Fatalf("statement is %T, want *ast.AnnAssign", stmt)
	}
	name, ok := annAssign.Target.(*ast.Name)
	if !ok || name.Value != "a" || name.Ctx != ast.Store {
		t.Errorf("target = %#v, want store-context name a", annAssign.Target)
	}
	if _, ok := annAssign.Annotation.(*ast.Name); !ok {
		t.Errorf("annotation is %T, want *ast.Name", annAssign.Annotation)
	}
	if _, ok := annAssign.Value.(*ast.IntegerLiteral); !ok {
		t.Errorf("value is %T, want *ast.IntegerLiteral", annAssign.Value)
	}
	if span := annAssign.Span(); span.Start != 0 || span.End != len("a: int = 3") {
		t.Errorf("span = %s, want 0..%d", span, len("a: int = 3"))
	}
}

func TestAnnAssignWithoutValue(t *testing.T) {
	stmt := parseStatement(t, "a: int\n")
	annAssign := stmt.(*ast.AnnAssign)
	if annAssign.Value != nil {
		t.Errorf("value = %#v, want nil", annAssign.Value)
	}
	if span := annAssign.Span(); span.End != len("a: int") {
		t.Errorf("span = %s, want end at annotation", span)
	}
}

func TestSubscriptAnnotation(t *testing.T) {
	stmt := parseStatement(t, "a: Literal[5] = 5\n")
	annAssign := stmt.(*ast.AnnAssign)
	sub, ok := annAssign.Annotation.(*ast.Subscript)
	if !ok {
		t.Fatalf("annotation is %T, want *ast.Subscript", annAssign.Annotation)
	}
	if base, ok := sub.Value.(*ast.Name); !ok || base.Value != "Literal" {
		t.Errorf("subscript base = %#v", sub.Value)
	}
	if _, ok := sub.Slice.(*ast.IntegerLiteral); !ok {
		t.Errorf("slice is %T, want *ast.IntegerLiteral", sub.Slice)
	}
	if span := sub.Span(); span.End != len("a: Literal[5]") {
		t.Errorf("subscript span = %s, want end past bracket", span)
	}
}

func TestSubscriptTupleSlice(t *testing.T) {
	stmt := parseStatement(t, "a: Union[int, str]\n")
	sub := stmt.(*ast.AnnAssign).Annotation.(*ast.Subscript)
	tuple, ok := sub.Slice.(*ast.TupleExpr)
	if !ok {
		t.Fatalf("slice is %T, want *ast.TupleExpr", sub.Slice)
	}
	if len(tuple.Elements) != 2 {
		t.Errorf("slice has %d elements, want 2", len(tuple.Elements))
	}
}

func TestAssignChain(t *testing.T) {
	stmt := parseStatement(t, "a = b = 3\n")
	assign := stmt.(*ast.Assign)
	if len(assign.Targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(assign.Targets))
	}
	for _, target := range assign.Targets {
		if name, ok := target.(*ast.Name); !ok || name.Ctx != ast.Store {
			t.Errorf("target %#v is not a store-context name", target)
		}
	}
}

func TestExprStatementCall(t *testing.T) {
	input := "reveal_type(a)\n"
	stmt := parseStatement(t, input)
	call := stmt.(*ast.ExprStmt).Value.(*ast.Call)
	if len(call.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(call.Args))
	}
	argSpan := call.Args[0].Span()
	if want := strings.Index(input, "a)"); argSpan.Start != want {
		t.Errorf("arg span = %s, want start %d", argSpan, want)
	}
	if span := call.Span(); span.Start != 0 || span.End != len("reveal_type(a)") {
		t.Errorf("call span = %s", span)
	}
}

func TestCallSpanIncludesFuncParens(t *testing.T) {
	input := "(lambda x: x)(1)\n"
	stmt := parseStatement(t, input)
	call := stmt.(*ast.ExprStmt).Value.(*ast.Call)
	if _, ok := call.Func.(*ast.Paren); !ok {
		t.Fatalf("func is %T, want *ast.Paren", call.Func)
	}
	if span := call.Span(); span.Start != 0 || span.End != len("(lambda x: x)(1)") {
		t.Errorf("call span = %s, want the whole expression", span)
	}
}

func TestLambda(t *testing.T) {
	stmt := parseStatement(t, "f = lambda x, y, z: \"asdf\"\n")
	lambda := stmt.(*ast.Assign).Value.(*ast.Lambda)
	if len(lambda.Params) != 3 {
		t.Fatalf("got %d params, want 3", len(lambda.Params))
	}
	if lambda.Params[0].Annotation != nil {
		t.Errorf("lambda params must not carry annotations")
	}
	if _, ok := lambda.Body.(*ast.StringLiteral); !ok {
		t.Errorf("body is %T, want *ast.StringLiteral", lambda.Body)
	}
}

func TestFunctionDef(t *testing.T) {
	input := "def g(x: int, y = 3) -> int:\n    return x\n"
	stmt := parseStatement(t, input)
	def := stmt.(*ast.FunctionDef)
	if def.Name.Value != "g" {
		t.Errorf("name = %q, want g", def.Name.Value)
	}
	if len(def.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(def.Params))
	}
	if def.Params[0].Annotation == nil || def.Params[0].Default != nil {
		t.Errorf("param x = %#v, want annotation and no default", def.Params[0])
	}
	if def.Params[1].Annotation != nil || def.Params[1].Default == nil {
		t.Errorf("param y = %#v, want default and no annotation", def.Params[1])
	}
	if def.Returns == nil {
		t.Errorf("missing return annotation")
	}
	if len(def.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(def.Body))
	}
	ret := def.Body[0].(*ast.Return)
	if ret.Value == nil {
		t.Errorf("return value missing")
	}
}

func TestNestedFunctionDef(t *testing.T) {
	input := "def f():\n    def g():\n        pass\n    return None\n"
	def := parseStatement(t, input).(*ast.FunctionDef)
	if len(def.Body) != 2 {
		t.Fatalf("outer body has %d statements, want 2", len(def.Body))
	}
	inner, ok := def.Body[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("inner statement is %T, want *ast.FunctionDef", def.Body[0])
	}
	if len(inner.Body) != 1 {
		t.Errorf("inner body has %d statements, want 1", len(inner.Body))
	}
}

func TestClassDef(t *testing.T) {
	stmt := parseStatement(t, "class Foo:\n    pass\n")
	class := stmt.(*ast.ClassDef)
	if class.Name.Value != "Foo" {
		t.Errorf("name = %q, want Foo", class.Name.Value)
	}
}

func TestImports(t *testing.T) {
	mod := parseModule(t, "import sys\nimport os.path as p\nfrom typing import reveal_type as rt, cast\n")
	if len(mod.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(mod.Statements))
	}

	imp := mod.Statements[0].(*ast.Import)
	if imp.Names[0].Name != "sys" || imp.Names[0].AsName != nil {
		t.Errorf("import sys parsed as %#v", imp.Names[0])
	}

	aliased := mod.Statements[1].(*ast.Import)
	if aliased.Names[0].Name != "os.path" || aliased.Names[0].AsName.Value != "p" {
		t.Errorf("import os.path as p parsed as %#v", aliased.Names[0])
	}

	from := mod.Statements[2].(*ast.ImportFrom)
	if from.Module != "typing" || len(from.Names) != 2 {
		t.Fatalf("from import parsed as %#v", from)
	}
	if from.Names[0].Name != "reveal_type" || from.Names[0].AsName.Value != "rt" {
		t.Errorf("alias 0 = %#v", from.Names[0])
	}
	if from.Names[1].Name != "cast" || from.Names[1].AsName != nil {
		t.Errorf("alias 1 = %#v", from.Names[1])
	}
}

func TestBareTuple(t *testing.T) {
	stmt := parseStatement(t, "x = 1, 2\n")
	tuple := stmt.(*ast.Assign).Value.(*ast.TupleExpr)
	if len(tuple.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(tuple.Elements))
	}
}

func TestEmptyTuple(t *testing.T) {
	stmt := parseStatement(t, "x = ()\n")
	tuple := stmt.(*ast.Assign).Value.(*ast.TupleExpr)
	if len(tuple.Elements) != 0 {
		t.Fatalf("got %d elements, want 0", len(tuple.Elements))
	}
}

func TestAttributeAccess(t *testing.T) {
	input := "sys.version_info\n"
	stmt := parseStatement(t, input)
	attr := stmt.(*ast.ExprStmt).Value.(*ast.Attribute)
	if attr.Attr.Value != "version_info" {
		t.Errorf("attr = %q, want version_info", attr.Attr.Value)
	}
	if span := attr.Span(); span.Start != 0 || span.End != len("sys.version_info") {
		t.Errorf("attribute span = %s", span)
	}
}

func TestParseExpressionEntry(t *testing.T) {
	p := New(lexer.New("Union[int, str]"))
	expr := p.ParseExpression()
	if len(p.Errors()) != 0 {
		t.Fatalf("errors: %v", p.Errors())
	}
	if _, ok := expr.(*ast.Subscript); !ok {
		t.Fatalf("expr is %T, want *ast.Subscript", expr)
	}
}

func TestParseErrorRecovery(t *testing.T) {
	p := New(lexer.New("a = = 1\nb = 2\n"))
	mod := p.ParseModule()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected parse errors")
	}
	// The second statement is still parsed.
	found := false
	for _, stmt := range mod.Statements {
		if assign, ok := stmt.(*ast.Assign); ok {
			if name, ok := assign.Targets[0].(*ast.Name); ok && name.Value == "b" {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("recovery lost the statement after the error")
	}
}
