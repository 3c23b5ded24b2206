package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// SectionName is the INI section holding the entries.
	SectionName = "Segments"

	// MaxSonority bounds sonority values accepted by the loaders.
	MaxSonority = 30

	// maxGraphemeRunes bounds the length of a grapheme key.
	maxGraphemeRunes = 2
)

// Lexicon is an immutable grapheme → Entry mapping.
type Lexicon struct {
	entries map[string]Entry
	keys    []string // declared keys, in declaration order
}

// New builds a Lexicon from entries. Duplicate graphemes are rejected.
// Each lowercase grapheme is also registered under its uppercase form unless
// an entry for that form is declared explicitly.
func New(entries []Entry) (*Lexicon, error) {
	lex := &Lexicon{
		entries: make(map[string]Entry, len(entries)*2),
		keys:    make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := lex.entries[e.Original]; dup {
			return nil, &LexiconEntryError{Key: e.Original, Reason: "duplicate grapheme"}
		}
		lex.entries[e.Original] = e
		lex.keys = append(lex.keys, e.Original)
	}

	for _, key := range lex.keys {
		upper := strings.ToUpper(key)
		if upper == key {
			continue
		}
		if _, declared := lex.entries[upper]; declared {
			continue
		}
		alias := lex.entries[key]
		alias.Original = upper
		lex.entries[upper] = alias
	}

	return lex, nil
}

// Lookup returns the entry for grapheme g. The match is exact; folding is
// limited to the uppercase aliases registered by New.
func (l *Lexicon) Lookup(g string) (Entry, bool) {
	if l == nil {
		return Entry{}, false
	}
	e, ok := l.entries[g]
	return e, ok
}

// Len returns the number of declared entries (aliases excluded).
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.keys)
}

// Entries returns the declared entries sorted by grapheme.
func (l *Lexicon) Entries() []Entry {
	if l == nil {
		return []Entry{}
	}
	out := make([]Entry, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, l.entries[k])
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Original < out[j].Original
	})
	return out
}

// Canonical renders the declared entries in INI form, sorted by grapheme.
// Two lexicons with the same entries have the same canonical text, whatever
// format they were loaded from.
func (l *Lexicon) Canonical() string {
	var b strings.Builder
	b.WriteString("[" + SectionName + "]\n")
	for _, e := range l.Entries() {
		fmt.Fprintf(&b, "%s = %s, %d, %s\n", e.Original, e.Phonetic, e.Sonority, e.Class.Code())
	}
	return b.String()
}

// NewEntry validates and builds a single entry from its parts.
func NewEntry(grapheme, phonetic string, sonority int, class string) (Entry, error) {
	c, ok := ParseClass(class)
	if !ok {
		return Entry{}, &LexiconEntryError{Key: grapheme, Reason: fmt.Sprintf("unknown natural class %q", class)}
	}
	e := Entry{
		Original: grapheme,
		Phonetic: strings.TrimSpace(phonetic),
		Sonority: sonority,
		Class:    c,
	}
	if err := validateEntry(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// ParseEntry parses the "phonetic, sonority, class" value stored under key.
func ParseEntry(key, value string) (Entry, error) {
	fields := strings.Split(value, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) != 3 {
		return Entry{}, &LexiconEntryError{
			Key:    key,
			Value:  value,
			Reason: fmt.Sprintf("expected 3 fields (phonetic, sonority, class), got %d", len(fields)),
		}
	}

	son, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, &LexiconEntryError{Key: key, Value: value, Reason: fmt.Sprintf("sonority %q is not an integer", fields[1])}
	}

	e, err := NewEntry(key, fields[0], son, fields[2])
	if err != nil {
		var le *LexiconEntryError
		if errors.As(err, &le) {
			le.Value = value
		}
		return Entry{}, err
	}
	return e, nil
}

func validateEntry(e Entry) error {
	n := utf8.RuneCountInString(e.Original)
	switch {
	case n == 0:
		return &LexiconEntryError{Key: e.Original, Reason: "empty grapheme"}
	case n > maxGraphemeRunes:
		return &LexiconEntryError{Key: e.Original, Reason: fmt.Sprintf("grapheme longer than %d runes", maxGraphemeRunes)}
	case strings.IndexFunc(e.Original, unicode.IsSpace) >= 0:
		return &LexiconEntryError{Key: e.Original, Reason: "grapheme contains whitespace"}
	case e.Phonetic == "":
		return &LexiconEntryError{Key: e.Original, Reason: "empty phonetic spelling"}
	case e.Sonority == 0:
		return &LexiconEntryError{Key: e.Original, Reason: "sonority 0 is reserved for unknown graphemes"}
	case e.Sonority < 0 || e.Sonority > MaxSonority:
		return &LexiconEntryError{Key: e.Original, Reason: fmt.Sprintf("sonority %d outside 1..%d", e.Sonority, MaxSonority)}
	case e.Class == ClassUnknown:
		return &LexiconEntryError{Key: e.Original, Reason: "natural class is required"}
	}
	return nil
}
