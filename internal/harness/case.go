package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Case defines a set of lines with their expected syllabification.
type Case struct {
	// Name uniquely identifies this case.
	Name string `yaml:"name"`

	// Description explains what this case pins down.
	Description string `yaml:"description"`

	// Lexicon is an optional lexicon file (.ini, .txt, .yaml, .yml, .cue).
	// Relative paths are resolved against the case file's directory.
	// Empty means the embedded default lexicon.
	Lexicon string `yaml:"lexicon,omitempty"`

	// Separator overrides the boundary glyph. Empty means "|".
	Separator string `yaml:"separator,omitempty"`

	// Lines are checked in order.
	Lines []LineCase `yaml:"lines"`
}

// LineCase is one input line and what it should produce.
// Nil expectations are not checked.
type LineCase struct {
	Text   string  `yaml:"text"`
	Marked *string `yaml:"marked,omitempty"`
	Count  *int    `yaml:"count,omitempty"`
	Blank  *bool   `yaml:"blank,omitempty"`
}

// LoadCase reads and parses a case YAML file.
// A relative lexicon path is resolved against the file's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	c, err := ParseCase(data)
	if err != nil {
		return nil, err
	}

	if c.Lexicon != "" && !filepath.IsAbs(c.Lexicon) {
		c.Lexicon = filepath.Join(filepath.Dir(path), c.Lexicon)
	}
	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return nil, fmt.Errorf("invalid case: lexicon file not found: %s", c.Lexicon)
		}
	}

	return c, nil
}

// ParseCase parses case YAML without touching the filesystem.
func ParseCase(data []byte) (*Case, error) {
	var c Case
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateCase(&c); err != nil {
		return nil, fmt.Errorf("invalid case: %w", err)
	}

	return &c, nil
}

// validateCase checks that required fields are present and consistent.
func validateCase(c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	if c.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(c.Lines) == 0 {
		return fmt.Errorf("lines list is required and must be non-empty")
	}

	for i, l := range c.Lines {
		if l.Count != nil && *l.Count < 1 {
			return fmt.Errorf("lines[%d]: count must be at least 1", i)
		}
		if l.Blank != nil && *l.Blank && (l.Marked != nil || l.Count != nil) {
			return fmt.Errorf("lines[%d]: a blank line has no marked output or count", i)
		}
	}

	return nil
}
