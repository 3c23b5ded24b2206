package syllable

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/roach88/sillaba/internal/lexicon"
)

// Syllabifier marks syllables in lines of verse against one lexicon.
// It holds no mutable state and is safe for concurrent use.
type Syllabifier struct {
	lex *lexicon.Lexicon
	sep string
}

// Option configures a Syllabifier.
type Option func(*Syllabifier)

// WithSeparator sets the boundary glyph (default Separator).
func WithSeparator(sep string) Option {
	return func(s *Syllabifier) {
		s.sep = sep
	}
}

// New returns a Syllabifier over lex.
func New(lex *lexicon.Lexicon, opts ...Option) (*Syllabifier, error) {
	if lex == nil {
		return nil, fmt.Errorf("syllabifier: nil lexicon")
	}
	s := &Syllabifier{lex: lex, sep: Separator}
	for _, opt := range opts {
		opt(s)
	}
	if s.sep == "" {
		return nil, fmt.Errorf("syllabifier: empty separator")
	}
	if strings.IndexFunc(s.sep, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("syllabifier: separator %q contains whitespace", s.sep)
	}
	return s, nil
}

// Separator returns the boundary glyph in use.
func (s *Syllabifier) Separator() string {
	return s.sep
}

// Lexicon returns the lexicon the syllabifier reads.
func (s *Syllabifier) Lexicon() *lexicon.Lexicon {
	return s.lex
}

// Word transposes and syllabifies a single word.
func (s *Syllabifier) Word(word string) (string, error) {
	marked, _, err := syllabify(Transpose(s.lex, word), s.sep)
	return marked, err
}

// LineResult is the outcome of marking one line.
type LineResult struct {
	// Text is the input line.
	Text string `json:"text"`

	// Marked is the line with boundaries inserted, words joined by single spaces.
	Marked string `json:"marked,omitempty"`

	// Count is the number of syllables (boundaries + 1). Zero for blank lines.
	Count int `json:"count,omitempty"`

	// Blank is set for lines without any token.
	Blank bool `json:"blank,omitempty"`
}

// Line marks every word of text and resolves the seams between them.
// A whitespace-only line yields Blank=true and no count.
func (s *Syllabifier) Line(text string) (LineResult, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return LineResult{Text: text, Blank: true}, nil
	}

	boundaries := 0
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		w, placed, err := syllabify(Transpose(s.lex, tok), s.sep)
		if err != nil {
			return LineResult{}, &WordError{Token: tok, Index: i, Err: err}
		}
		words[i] = w
		boundaries += placed
	}

	resolved, seams := resolveBoundaries(words, s.sep)
	return LineResult{
		Text:   text,
		Marked: strings.Join(resolved, " "),
		Count:  boundaries + seams + 1,
	}, nil
}

// Count returns the syllable count of a marked line: glyphs + 1.
// It is exact only when sep does not occur in the source text; Line counts
// the boundaries it places instead.
func Count(marked, sep string) int {
	return strings.Count(marked, sep) + 1
}

// Strip removes every boundary glyph and the space that precedes a word-seam
// boundary, recovering the words of a marked line joined by single spaces.
// Glyphs that were part of the source text are removed too.
func Strip(marked, sep string) string {
	marked = strings.ReplaceAll(marked, " "+sep+" ", " ")
	return strings.ReplaceAll(marked, sep, "")
}
