package jinja

import (
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/token"
)

// Parse groups the token stream into template statements. Type checking of
// the embedded expressions is future work; the structure and spans are
// already exact.
func Parse(tokens []Token, content string) ([]Statement, []diagnostics.Diag) {
	var statements []Statement
	var errors []diagnostics.Diag

	for i := 0; i < len(tokens); i++ {
		switch tokens[i].Type {
		case VariableBegin:
			island, end := collectIsland(tokens, i+1, VariableEnd)
			stmt := &Expression{
				Range:  token.Cover(tokens[i].Range, endRange(tokens, i, end)),
				Tokens: island,
			}
			for j, t := range island {
				if t.Type == Pipe && j+1 < len(island) && island[j+1].Type == Name {
					r := island[j+1].Range
					stmt.Filters = append(stmt.Filters, content[r.Start:r.End])
				}
			}
			statements = append(statements, stmt)
			i = end
		case StatementBegin:
			island, end := collectIsland(tokens, i+1, StatementEnd)
			head := ""
			if len(island) > 0 && island[0].Type == Name {
				r := island[0].Range
				head = content[r.Start:r.End]
			}
			statements = append(statements, &Block{
				Range:  token.Cover(tokens[i].Range, endRange(tokens, i, end)),
				Head:   head,
				Tokens: island,
			})
			i = end
		}
	}
	return statements, errors
}

// collectIsland gathers tokens until the closing delimiter and returns the
// island plus the index of the delimiter (or of Eof).
func collectIsland(tokens []Token, start int, closing TokenType) ([]Token, int) {
	var island []Token
	for i := start; i < len(tokens); i++ {
		if tokens[i].Type == closing || tokens[i].Type == Eof {
			return island, i
		}
		island = append(island, tokens[i])
	}
	return island, len(tokens) - 1
}

func endRange(tokens []Token, open, end int) token.Span {
	if end < len(tokens) {
		return tokens[end].Range
	}
	return tokens[open].Range
}
