// Package lexicon provides the phoneme table that drives syllabification.
//
// A Lexicon maps a single grapheme (one or two runes) to an Entry holding its
// phonetic spelling, sonority value and natural class. A Lexicon is built once
// at startup and is read-only afterwards; it is safe to share across
// goroutines.
//
// Key design constraints:
//   - Sonority 0 is reserved for "absent" (unknown graphemes, punctuation).
//     Loaders reject it for real entries.
//   - Malformed entries fail at load time with *LexiconEntryError, never at
//     lookup time.
//   - Keys are matched case-insensitively the way configparser does it: a
//     lowercase grapheme also answers for its uppercase form unless that form
//     has an entry of its own.
//
// Three storage formats are supported: the canonical INI layout
// (section [Segments], "a = a, 26, V"), YAML, and CUE (see package compiler).
package lexicon
