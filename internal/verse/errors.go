package verse

import (
	"errors"
	"fmt"

	"github.com/roach88/sillaba/internal/syllable"
)

// LineError reports a failure on one input line.
type LineError struct {
	// Line is the 1-based line number.
	Line int

	// Token is the offending word, when the failure is tied to one.
	Token string

	Err error
}

func (e *LineError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("line %d: token %q: %v", e.Line, e.Token, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// newLineError attaches the line number, and the token if err carries one.
func newLineError(line int, err error) *LineError {
	le := &LineError{Line: line, Err: err}
	var we *syllable.WordError
	if errors.As(err, &we) {
		le.Token = we.Token
	}
	return le
}
