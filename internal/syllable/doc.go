// Package syllable marks syllable boundaries in Italian verse.
//
// The engine works in three steps, each a pure function of its input and the
// read-only lexicon:
//
//  1. Transpose maps every rune of a word to a Unit carrying its phonetic
//     spelling, sonority and natural class. Runes absent from the lexicon
//     become placeholder units with sonority 0.
//  2. Syllabify scans the units once, left to right, and places a boundary
//     wherever sonority reaches a strict local minimum, between equal
//     consonants (gemination), inside "ae" (hiatus) and after a dieresis vowel.
//  3. ResolveBoundaries decides, for each pair of adjacent words, whether a
//     boundary belongs at the seam. A vowel-final word followed by a vowel- or
//     h-initial word elides and gets none.
//
// Syllabifier ties the steps together for a whole line.
//
// Units are per-word working values. Syllabify copies them into its own
// buffer and mutates that buffer in place (zero-sonority propagation, the
// apostrophe rewrite); nothing outside one call ever sees those writes.
package syllable
