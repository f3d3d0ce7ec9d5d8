package diagnostics

import (
	"io"
	"sync"

	"github.com/funvibe/pyvet/internal/token"
)

// Reporter is a grow-only, ordered collection of diagnostics. A single
// checking session appends from one goroutine; the mutex keeps append and
// snapshot safe should sessions ever run on separate goroutines.
type Reporter struct {
	mu    sync.Mutex
	diags []Diag
}

func NewReporter() *Reporter {
	return &Reporter{}
}

// Add appends a diagnostic, preserving walk order.
func (r *Reporter) Add(d Diag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diags = append(r.diags, d)
}

func (r *Reporter) Info(body string, span token.Span) {
	r.Add(NewInfo(body, span))
}

func (r *Reporter) Warning(body string, span token.Span) {
	r.Add(NewWarning(body, span))
}

func (r *Reporter) Error(body string, span token.Span) {
	r.Add(NewError(body, span))
}

// Len returns the total number of collected diagnostics.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diags)
}

// ErrorCount returns the number of Error-kind diagnostics. Informational
// findings such as reveal_type results are not counted.
func (r *Reporter) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.diags {
		if d.Kind() == Error {
			n++
		}
	}
	return n
}

// Diags returns a snapshot of the collected diagnostics in append order.
func (r *Reporter) Diags() []Diag {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diag, len(r.diags))
	copy(out, r.diags)
	return out
}

// Flush renders every diagnostic to w against the given file.
func (r *Reporter) Flush(fileName, fileContent string, w io.Writer, color bool) error {
	for _, d := range r.Diags() {
		if err := Render(d, fileName, fileContent, w, color); err != nil {
			return err
		}
	}
	return nil
}
