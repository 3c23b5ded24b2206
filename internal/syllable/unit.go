package syllable

import (
	"unicode/utf8"

	"github.com/roach88/sillaba/internal/lexicon"
)

// Unit is one rune of a word, classified.
type Unit struct {
	// Original is the source rune, verbatim. It is what gets printed.
	Original string

	Phonetic string
	Sonority int
	Class    lexicon.Class
}

// CV returns the unit's consonant/vowel reduction.
func (u Unit) CV() lexicon.CV {
	return u.Class.CV()
}

// Known reports whether the unit came from a lexicon entry.
func (u Unit) Known() bool {
	return u.Class != lexicon.ClassUnknown
}

// placeholder builds the unit for a rune the lexicon does not know.
func placeholder(original string) Unit {
	return Unit{Original: original, Sonority: 0, Class: lexicon.ClassUnknown}
}

// Transpose converts word into units, one per rune, in order.
// Lookups are exact (no case folding here). Entries are copied, so later
// mutation of a unit never touches the lexicon. Invalid UTF-8 bytes become
// single-byte placeholder units and are preserved verbatim.
func Transpose(lex *lexicon.Lexicon, word string) []Unit {
	units := make([]Unit, 0, utf8.RuneCountInString(word))
	for i := 0; i < len(word); {
		_, size := utf8.DecodeRuneInString(word[i:])
		g := word[i : i+size]
		i += size

		e, ok := lex.Lookup(g)
		if !ok {
			units = append(units, placeholder(g))
			continue
		}
		units = append(units, Unit{
			Original: g,
			Phonetic: e.Phonetic,
			Sonority: e.Sonority,
			Class:    e.Class,
		})
	}
	return units
}
