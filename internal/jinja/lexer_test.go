package jinja

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func assertTokens(t *testing.T, input string, want []TokenType) []Token {
	t.Helper()
	toks, errs := Tokenize(input)
	if len(errs) != 0 {
		t.Fatalf("Tokenize(%q) errors: %v", input, errs[0].Message())
	}
	if diff := cmp.Diff(want, tokenTypes(toks)); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
	return toks
}

func TestPlainTextProducesNoTokens(t *testing.T) {
	assertTokens(t, "just text, no islands", []TokenType{Eof})
}

func TestVariableIsland(t *testing.T) {
	toks := assertTokens(t, "Hello {{ name }}!", []TokenType{
		VariableBegin, Name, VariableEnd, Eof,
	})
	if toks[0].Range.Start != 6 || toks[0].Range.End != 8 {
		t.Errorf("VariableBegin span = %s", toks[0].Range)
	}
	if toks[1].Range.Start != 9 || toks[1].Range.End != 13 {
		t.Errorf("Name span = %s", toks[1].Range)
	}
}

func TestFilterPipe(t *testing.T) {
	assertTokens(t, "{{ name|upper }}", []TokenType{
		VariableBegin, Name, Pipe, Name, VariableEnd, Eof,
	})
}

func TestStatementIsland(t *testing.T) {
	assertTokens(t, "{% if x == 1 %}", []TokenType{
		StatementBegin, Name, Name, Eq, Integer, StatementEnd, Eof,
	})
}

func TestOperators(t *testing.T) {
	assertTokens(t, "{{ a // b ** c != d >= 1.5 }}", []TokenType{
		VariableBegin, Name, Floordiv, Name, Pow, Name, Ne, Name, Gteq, Float,
		VariableEnd, Eof,
	})
}

func TestStringToken(t *testing.T) {
	toks := assertTokens(t, `{{ "he\"y" }}`, []TokenType{
		VariableBegin, String, VariableEnd, Eof,
	})
	if toks[1].Range.Start != 3 || toks[1].Range.End != 10 {
		t.Errorf("String span = %s", toks[1].Range)
	}
}

func TestComment(t *testing.T) {
	assertTokens(t, "a {# note #} b", []TokenType{Comment, Eof})
}

func TestUnterminatedIsland(t *testing.T) {
	_, errs := Tokenize("{{ name")
	if len(errs) == 0 {
		t.Fatalf("expected an error for an unterminated island")
	}
}

func TestParseGroupsIslands(t *testing.T) {
	content := "{{ name|upper }} {% for x %}"
	toks, errs := Tokenize(content)
	if len(errs) != 0 {
		t.Fatalf("Tokenize errors: %v", errs)
	}
	statements, parseErrs := Parse(toks, content)
	if len(parseErrs) != 0 {
		t.Fatalf("Parse errors: %v", parseErrs)
	}
	if len(statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(statements))
	}

	expr, ok := statements[0].(*Expression)
	if !ok {
		t.Fatalf("statement 0 is %T, want *Expression", statements[0])
	}
	if len(expr.Filters) != 1 || expr.Filters[0] != "upper" {
		t.Errorf("filters = %v, want [upper]", expr.Filters)
	}

	block, ok := statements[1].(*Block)
	if !ok {
		t.Fatalf("statement 1 is %T, want *Block", statements[1])
	}
	if block.Head != "for" {
		t.Errorf("block head = %q, want for", block.Head)
	}
}

func TestCheckFileReportsLexErrors(t *testing.T) {
	reporter := CheckFile("t.html", "{{ oops")
	if reporter.ErrorCount() == 0 {
		t.Errorf("expected at least one error")
	}
}
