package checker

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/funvibe/pyvet/internal/ast"
	"github.com/funvibe/pyvet/internal/diagnostics"
	"github.com/funvibe/pyvet/internal/lexer"
	"github.com/funvibe/pyvet/internal/parser"
	"github.com/funvibe/pyvet/internal/scope"
)

// ParseError aborts a session before the walk begins: the file could not be
// parsed into an AST.
type ParseError struct {
	Diags []diagnostics.Diag
}

func (e *ParseError) Error() string {
	msgs := make([]string, len(e.Diags))
	for i, d := range e.Diags {
		msgs[i] = d.Message()
	}
	return fmt.Sprintf("parse failed: %s", strings.Join(msgs, "; "))
}

// CheckFile parses and type-checks one file. The returned Info holds the
// session reporter with every diagnostic in walk order. Parse errors
// short-circuit the session.
func CheckFile(fileName, content string) (*Info, error) {
	p := parser.New(lexer.New(content))
	module := p.ParseModule()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, &ParseError{Diags: errs}
	}

	info := NewInfo(fileName, content)
	log.WithFields(log.Fields{
		"session": info.SessionID,
		"file":    fileName,
	}).Debug("checking file")

	CheckModule(info, module)

	log.WithFields(log.Fields{
		"session": info.SessionID,
		"errors":  info.Reporter.ErrorCount(),
	}).Debug("checking done")
	return info, nil
}

// CheckModule walks an already-parsed module against a fresh scope.
func CheckModule(info *Info, module *ast.Module) {
	sc := scope.New()
	data := &StatementSynthData{}
	for _, stmt := range module.Statements {
		CheckStatement(info, data, sc, stmt)
	}
}
