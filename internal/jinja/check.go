package jinja

import (
	log "github.com/sirupsen/logrus"

	"github.com/funvibe/pyvet/internal/diagnostics"
)

// CheckFile runs the template front-end over one file and returns the
// reporter with every lexical and structural finding in source order.
func CheckFile(fileName, content string) *diagnostics.Reporter {
	reporter := diagnostics.NewReporter()

	tokens, lexErrors := Tokenize(content)
	for _, d := range lexErrors {
		reporter.Add(d)
	}
	statements, parseErrors := Parse(tokens, content)
	for _, d := range parseErrors {
		reporter.Add(d)
	}

	log.WithFields(log.Fields{
		"file":       fileName,
		"statements": len(statements),
	}).Debug("checked template")
	return reporter
}
