package harness

import "github.com/roach88/sillaba/internal/syllable"

// Result contains the outcome of running a case.
type Result struct {
	// Name is the case name.
	Name string

	// Separator is the boundary glyph the case ran with.
	Separator string

	// Pass is true if every check held.
	Pass bool

	// Lines holds the produced output for every input line, in order.
	Lines []Outcome

	// Errors contains check failures (empty if Pass is true).
	Errors []string
}

// Outcome is the produced output for one line.
type Outcome struct {
	Line int `json:"line"`
	syllable.LineResult
}

// NewResult creates a new Result initialized to pass.
func NewResult(name, sep string) *Result {
	return &Result{
		Name:      name,
		Separator: sep,
		Pass:      true,
		Lines:     []Outcome{},
		Errors:    []string{},
	}
}

// AddError adds an error message and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
