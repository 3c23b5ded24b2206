package syllable

import (
	"errors"
	"fmt"
)

// EmptyWordError is returned by Syllabify for an empty unit sequence.
// Line never produces empty tokens, so seeing it means a caller bypassed
// the tokenizer.
type EmptyWordError struct{}

func (e *EmptyWordError) Error() string {
	return "syllabify: empty word"
}

// WordError wraps a failure while syllabifying one token of a line.
type WordError struct {
	// Token is the offending whitespace-delimited token.
	Token string

	// Index is the token's 0-based position in the line.
	Index int

	Err error
}

func (e *WordError) Error() string {
	return fmt.Sprintf("word %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *WordError) Unwrap() error {
	return e.Err
}

// IsEmptyWord reports whether err is, or wraps, an *EmptyWordError.
func IsEmptyWord(err error) bool {
	var ew *EmptyWordError
	return errors.As(err, &ew)
}
