package lexicon

import (
	"errors"
	"fmt"
)

// LexiconEntryError reports a malformed lexicon entry.
// It is returned at load time; a lexicon containing a bad entry is never built.
type LexiconEntryError struct {
	// Key is the grapheme the entry is stored under.
	Key string

	// Value is the raw entry text, if the format has one.
	Value string

	// Reason describes what is wrong.
	Reason string
}

func (e *LexiconEntryError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("lexicon entry %q = %q: %s", e.Key, e.Value, e.Reason)
	}
	return fmt.Sprintf("lexicon entry %q: %s", e.Key, e.Reason)
}

// IsEntryError reports whether err is, or wraps, a *LexiconEntryError.
func IsEntryError(err error) bool {
	var le *LexiconEntryError
	return errors.As(err, &le)
}
