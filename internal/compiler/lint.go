package compiler

import (
	"fmt"

	"github.com/roach88/sillaba/internal/lexicon"
)

// Lexicon lint codes (E120-E129). These are warnings: the lexicon still loads,
// but some syllabification rule can never fire or will misfire.
const (
	ErrNoVowels          = "E120" // no vowel entries
	ErrSonorityInversion = "E121" // consonant at or above vowel sonority
	ErrNoApostrophe      = "E122" // apostrophe-elision rule cannot fire
	ErrNoHiatusPhonetics = "E123" // forced a|e hiatus cannot fire
	ErrClassOrder        = "E124" // natural classes out of sonority order
)

// ValidationError represents a lexicon lint finding.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// classRank orders consonant classes from least to most sonorous.
var classRank = map[lexicon.Class]int{
	lexicon.ClassOcclusive: 1,
	lexicon.ClassAffricate: 2,
	lexicon.ClassFricative: 3,
	lexicon.ClassNasal:     4,
	lexicon.ClassSonorant:  5,
	lexicon.ClassGlide:     6,
}

// Lint checks a loaded lexicon against the sonority hierarchy the syllabifier
// assumes. Returns all findings (does not fail-fast), ordered by grapheme.
func Lint(lex *lexicon.Lexicon) []ValidationError {
	var errs []ValidationError
	entries := lex.Entries()

	minVowel := 0
	hasA, hasE, hasApostrophe := false, false, false
	for _, e := range entries {
		if e.Class == lexicon.ClassVowel && (minVowel == 0 || e.Sonority < minVowel) {
			minVowel = e.Sonority
		}
		switch e.Phonetic {
		case "a":
			hasA = true
		case "e":
			hasE = true
		case "'":
			hasApostrophe = true
		}
	}

	if minVowel == 0 {
		errs = append(errs, ValidationError{
			Field:   "segments",
			Message: "no vowel entries; every word will be a single syllable",
			Code:    ErrNoVowels,
		})
	}

	// Loudest entry per consonant class rank.
	maxByRank := make(map[int]int)
	for _, e := range entries {
		if e.CV() == lexicon.Vowel {
			continue
		}
		if minVowel > 0 && e.Sonority >= minVowel {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("segments.%q", e.Original),
				Message: fmt.Sprintf("%s %q has sonority %d, not below the quietest vowel (%d)", e.Class, e.Original, e.Sonority, minVowel),
				Code:    ErrSonorityInversion,
			})
		}
		r := classRank[e.Class]
		if cur, ok := maxByRank[r]; !ok || e.Sonority > cur {
			maxByRank[r] = e.Sonority
		}
	}

	for _, e := range entries {
		if e.CV() == lexicon.Vowel {
			continue
		}
		r := classRank[e.Class]
		for lower := 1; lower < r; lower++ {
			maxSon, ok := maxByRank[lower]
			if ok && maxSon > e.Sonority {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("segments.%q", e.Original),
					Message: fmt.Sprintf("%s %q (sonority %d) is quieter than a less sonorous class (max %d)", e.Class, e.Original, e.Sonority, maxSon),
					Code:    ErrClassOrder,
				})
				break
			}
		}
	}

	if !hasApostrophe {
		errs = append(errs, ValidationError{
			Field:   "segments",
			Message: `no entry with phonetic "'"; apostrophe elision will not be detected`,
			Code:    ErrNoApostrophe,
		})
	}
	if !hasA || !hasE {
		errs = append(errs, ValidationError{
			Field:   "segments",
			Message: `phonetics "a" and "e" are both required for the a|e hiatus rule`,
			Code:    ErrNoHiatusPhonetics,
		})
	}

	return errs
}
