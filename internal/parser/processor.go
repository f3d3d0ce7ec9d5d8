package parser

import (
	"github.com/funvibe/pyvet/internal/pipeline"
	"github.com/funvibe/pyvet/internal/token"
)

// ParseProcessor is the parsing stage of the pipeline. It replays the
// tokens collected by the lex stage.
type ParseProcessor struct{}

func (ParseProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	p := New(&tokenReplay{tokens: ctx.Tokens})
	ctx.AstRoot = p.ParseModule()
	ctx.Errors = append(ctx.Errors, p.Errors()...)
	return ctx
}

type tokenReplay struct {
	tokens []token.Token
	pos    int
}

func (r *tokenReplay) NextToken() token.Token {
	if r.pos >= len(r.tokens) {
		if len(r.tokens) == 0 {
			return token.Token{Type: token.EOF}
		}
		return r.tokens[len(r.tokens)-1]
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok
}
