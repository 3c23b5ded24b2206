package lexicon

import (
	_ "embed"
	"sync"
)

//go:embed sonority.ini
var defaultINI []byte

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the built-in Italian lexicon. It is parsed once and shared.
func Default() (*Lexicon, error) {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = ParseINI(defaultINI)
	})
	return defaultLex, defaultErr
}

// DefaultSource returns the raw INI text of the built-in lexicon.
func DefaultSource() []byte {
	out := make([]byte, len(defaultINI))
	copy(out, defaultINI)
	return out
}
