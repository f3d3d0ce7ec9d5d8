package lexer

import (
	"github.com/funvibe/pyvet/internal/pipeline"
	"github.com/funvibe/pyvet/internal/token"
)

// LexProcessor is the tokenizing stage of the pipeline. Illegal tokens are
// passed through; the parser reports them with their spans.
type LexProcessor struct{}

func (LexProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.Source)
	for {
		tok := l.NextToken()
		ctx.Tokens = append(ctx.Tokens, tok)
		if tok.Type == token.EOF {
			return ctx
		}
	}
}
