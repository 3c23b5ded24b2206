package lexicon

import (
	"fmt"
	"io"

	"gopkg.in/ini.v1"
)

// iniOptions keep values verbatim: an apostrophe, semicolon or quote is a
// grapheme here, not INI syntax.
var iniOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
	KeyValueDelimiters:      "=",
	SkipUnrecognizableLines: false,
}

// ParseINI builds a Lexicon from the [Segments] section of an INI document.
// Every key is a grapheme; every value is "phonetic, sonority, class".
func ParseINI(data []byte) (*Lexicon, error) {
	f, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	sec, err := f.GetSection(SectionName)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon: section [%s] not found", SectionName)
	}

	keys := sec.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e, err := ParseEntry(k.Name(), k.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return New(entries)
}

// ReadINI reads an INI lexicon from r.
func ReadINI(r io.Reader) (*Lexicon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return ParseINI(data)
}
