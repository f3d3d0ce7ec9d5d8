package pipeline

import (
	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/token"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context carries the artifacts of a run through the stages. Stages fill in
// their output and append their diagnostics; later stages decide what to do
// when an earlier stage failed.
type Context struct {
	Source   string
	FilePath string

	Tokens  []token.Token
	AstRoot *ast.Module

	// Info is the checking session produced by the check stage. Typed
	// loosely so the context does not depend on the checker.
	Info interface{}

	Errors []diagnostics.Diag
}

func NewContext(source string) *Context {
	return &Context{Source: source}
}
