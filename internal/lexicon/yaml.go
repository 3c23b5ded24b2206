package lexicon

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the YAML lexicon layout:
//
//	segments:
//	  a: {phonetic: a, sonority: 26, class: V}
//	  "'": {phonetic: "'", sonority: 20, class: G}
type yamlDocument struct {
	Segments yaml.Node `yaml:"segments"`
}

type yamlEntry struct {
	Phonetic *string `yaml:"phonetic"`
	Sonority *int    `yaml:"sonority"`
	Class    *string `yaml:"class"`
}

// ParseYAML builds a Lexicon from a YAML document. Unknown fields are
// rejected; declaration order is preserved.
func ParseYAML(data []byte) (*Lexicon, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse lexicon: empty document")
		}
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	if doc.Segments.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse lexicon: segments must be a mapping")
	}

	content := doc.Segments.Content
	entries := make([]Entry, 0, len(content)/2)
	for i := 0; i+1 < len(content); i += 2 {
		key := content[i].Value

		var ye yamlEntry
		if err := content[i+1].Decode(&ye); err != nil {
			return nil, &LexiconEntryError{Key: key, Reason: fmt.Sprintf("line %d: %v", content[i+1].Line, err)}
		}

		var missing []string
		if ye.Phonetic == nil {
			missing = append(missing, "phonetic")
		}
		if ye.Sonority == nil {
			missing = append(missing, "sonority")
		}
		if ye.Class == nil {
			missing = append(missing, "class")
		}
		if len(missing) > 0 {
			return nil, &LexiconEntryError{
				Key:    key,
				Reason: fmt.Sprintf("line %d: missing %v", content[i+1].Line, missing),
			}
		}

		e, err := NewEntry(key, *ye.Phonetic, *ye.Sonority, *ye.Class)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return New(entries)
}
