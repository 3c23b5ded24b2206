package syllable

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// elidingLetters are the letters that let two words merge across the seam.
// "h" is silent and patterns with the vowels.
const elidingLetters = "aeiouàèéìíòùh"

// isVowel reports whether r elides, ignoring case.
func isVowel(r rune) bool {
	return strings.ContainsRune(elidingLetters, unicode.ToLower(r))
}

// lastLetter returns the final rune of word if it is a letter, otherwise the
// rune before it. Only one trailing punctuation rune is skipped.
func lastLetter(word string) (rune, bool) {
	r, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return 0, false
	}
	if unicode.IsLetter(r) {
		return r, true
	}
	r2, size2 := utf8.DecodeLastRuneInString(word[:len(word)-size])
	if size2 == 0 {
		return 0, false
	}
	return r2, true
}

// hasLetter reports whether tok contains any letter.
func hasLetter(tok string) bool {
	return strings.IndexFunc(tok, unicode.IsLetter) >= 0
}

// seam reports whether a boundary separates word a from the following word b.
func seam(a, b string) bool {
	first, _ := utf8.DecodeRuneInString(b)
	if !unicode.IsLetter(first) {
		return false
	}
	last, ok := lastLetter(a)
	return !(ok && isVowel(last) && isVowel(first))
}

// ResolveBoundaries decides which word seams of a line carry a boundary.
// words are already syllabified. The result has the same length; the token
// before a boundary is suffixed with " "+sep.
//
// No boundary is placed after the last word, between a vowel-final and a
// vowel- or h-initial word (elision), or before a token that does not begin
// with a letter. Tokens without any letter (a lone dash, comma or guillemet)
// are transparent: the seam is decided by the words around them and its
// boundary follows the last token before the next word.
func ResolveBoundaries(words []string, sep string) []string {
	out, _ := resolveBoundaries(words, sep)
	return out
}

// resolveBoundaries is ResolveBoundaries that also returns the number of
// seam boundaries placed.
func resolveBoundaries(words []string, sep string) ([]string, int) {
	out := make([]string, len(words))
	copy(out, words)

	placed := 0
	prev := -1 // last token with a letter
	for i, w := range words {
		if !hasLetter(w) {
			continue
		}
		if prev >= 0 && seam(words[prev], w) {
			out[i-1] += " " + sep
			placed++
		}
		prev = i
	}
	return out, placed
}
