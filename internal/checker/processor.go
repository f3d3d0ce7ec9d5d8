package checker

import (
	"github.com/funvibe/pyvet/internal/pipeline"
)

// CheckProcessor is the type-checking stage of the pipeline. Parse errors
// from earlier stages short-circuit the session before the walk begins.
type CheckProcessor struct{}

func (CheckProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if len(ctx.Errors) > 0 || ctx.AstRoot == nil {
		return ctx
	}
	info := NewInfo(ctx.FilePath, ctx.Source)
	CheckModule(info, ctx.AstRoot)
	ctx.Info = info
	return ctx
}
