package lexicon

import (
	"fmt"
	"strings"
)

// Class is the natural class of a sound.
type Class uint8

const (
	// ClassUnknown marks a grapheme absent from the lexicon.
	ClassUnknown Class = iota
	ClassVowel
	ClassGlide
	ClassSonorant
	ClassNasal
	ClassFricative
	ClassAffricate
	ClassOcclusive
	// ClassDieresis is a vowel forced not to glide with its neighbour.
	ClassDieresis
)

var classCodes = map[Class]string{
	ClassUnknown:   "?",
	ClassVowel:     "V",
	ClassGlide:     "G",
	ClassSonorant:  "S",
	ClassNasal:     "N",
	ClassFricative: "F",
	ClassAffricate: "A",
	ClassOcclusive: "O",
	ClassDieresis:  "D",
}

var classNames = map[Class]string{
	ClassUnknown:   "unknown",
	ClassVowel:     "vowel",
	ClassGlide:     "glide",
	ClassSonorant:  "sonorant",
	ClassNasal:     "nasal",
	ClassFricative: "fricative",
	ClassAffricate: "affricate",
	ClassOcclusive: "occlusive",
	ClassDieresis:  "dieresis",
}

// ParseClass maps a one-letter class code (V, G, S, N, F, A, O, D) to a Class.
// Codes are case-insensitive. ClassUnknown is never returned with ok=true.
func ParseClass(code string) (Class, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for c, s := range classCodes {
		if c != ClassUnknown && s == code {
			return c, true
		}
	}
	return ClassUnknown, false
}

// Code returns the one-letter code used in lexicon files.
func (c Class) Code() string {
	if s, ok := classCodes[c]; ok {
		return s
	}
	return classCodes[ClassUnknown]
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return classNames[ClassUnknown]
}

// CV is the binary reduction of a natural class.
type CV uint8

const (
	Consonant CV = iota
	Vowel
)

func (v CV) String() string {
	if v == Vowel {
		return "V"
	}
	return "C"
}

// CV reduces the class to Vowel (vowels and dieresis vowels) or Consonant.
// Unknown graphemes count as consonants.
func (c Class) CV() CV {
	if c == ClassVowel || c == ClassDieresis {
		return Vowel
	}
	return Consonant
}

// Entry is one row of the lexicon.
type Entry struct {
	Original string `json:"original"`
	Phonetic string `json:"phonetic"`
	Sonority int    `json:"sonority"`
	Class    Class  `json:"class"`
}

// CV returns the entry's consonant/vowel reduction.
func (e Entry) CV() CV {
	return e.Class.CV()
}

// MarshalText encodes a Class as its one-letter code.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalText decodes a one-letter class code.
func (c *Class) UnmarshalText(text []byte) error {
	parsed, ok := ParseClass(string(text))
	if !ok {
		return fmt.Errorf("unknown natural class %q", text)
	}
	*c = parsed
	return nil
}
