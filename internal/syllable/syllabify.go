package syllable

import (
	"strings"

	"github.com/roach88/sillaba/internal/lexicon"
)

// Separator is the default boundary glyph.
const Separator = "|"

// apostrophe is the phonetic spelling shared by every apostrophe grapheme.
const apostrophe = "'"

// Syllabify marks the syllable boundaries of one word using Separator.
// units is not modified.
func Syllabify(units []Unit) (string, error) {
	marked, _, err := syllabify(units, Separator)
	return marked, err
}

// marker accumulates a word's output. One syllable seam yields one glyph:
// a dieresis boundary followed by a sonority-minimum boundary at the same
// position is written once and counted once.
type marker struct {
	b       strings.Builder
	sep     string
	pending bool // last write was a boundary
	placed  int  // boundaries written
}

func (m *marker) char(s string) {
	m.b.WriteString(s)
	m.pending = false
}

func (m *marker) boundary() {
	if m.pending {
		return
	}
	m.b.WriteString(m.sep)
	m.pending = true
	m.placed++
}

// syllabify returns the marked word and the number of boundaries placed in
// it. The count is independent of any separator glyph already in the word.
func syllabify(units []Unit, sep string) (string, int, error) {
	if len(units) == 0 {
		return "", 0, &EmptyWordError{}
	}

	// Working buffer with a silent terminal unit so lookahead never runs off
	// the end. The terminal is never emitted.
	buf := make([]Unit, len(units), len(units)+1)
	copy(buf, units)
	buf = append(buf, placeholder(""))
	last := len(buf) - 2

	m := &marker{sep: sep}
	m.char(buf[0].Original)

	for i := 1; i <= last; i++ {
		prev, cur := buf[i-1], &buf[i]

		switch {
		// Unknown units (punctuation) take the preceding sonority so they
		// are never read as a minimum.
		case cur.Sonority == 0:
			cur.Sonority = prev.Sonority
			m.char(cur.Original)

		// An apostrophe before a vowel sounds like that vowel.
		case buf[i+1].Phonetic == apostrophe && i+2 < len(buf) && buf[i+2].CV() == lexicon.Vowel:
			buf[i+1].Sonority = buf[i+2].Sonority
			if isMinimum(prev, *cur, buf[i+1]) {
				m.boundary()
			}
			m.char(cur.Original)

		// a|e is always a hiatus.
		case cur.Phonetic == "e" && prev.Phonetic == "a":
			m.boundary()
			m.char(cur.Original)

		case cur.Class == lexicon.ClassDieresis:
			m.char(cur.Original)
			if i < last {
				m.boundary()
			}

		default:
			if isMinimum(prev, *cur, buf[i+1]) {
				m.boundary()
			}
			m.char(cur.Original)
		}
	}

	return m.b.String(), m.placed, nil
}

// isMinimum reports whether a boundary belongs before cur: cur is a strict
// sonority minimum, or a consonant as sonorous as the one before it.
func isMinimum(prev, cur, next Unit) bool {
	if prev.Sonority > cur.Sonority && next.Sonority > cur.Sonority {
		return true
	}
	return prev.Sonority == cur.Sonority && cur.CV() != lexicon.Vowel
}
