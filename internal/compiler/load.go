package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/sillaba/internal/lexicon"
)

// Format identifies a lexicon source format.
type Format string

const (
	FormatINI  Format = "ini"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// FormatFor picks the lexicon format from a file extension.
// .txt and .ini are the canonical INI form.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini", ".txt":
		return FormatINI, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("unsupported lexicon extension %q (want .ini, .txt, .yaml, .yml or .cue)", filepath.Ext(path))
	}
}

// LoadFile reads and compiles a lexicon file of any supported format.
// An empty path yields the embedded default lexicon.
func LoadFile(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default()
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	return LoadSource(path, format, data)
}

// LoadSource compiles lexicon bytes in the given format.
// name is used for CUE error positions.
func LoadSource(name string, format Format, data []byte) (*lexicon.Lexicon, error) {
	switch format {
	case FormatINI:
		return lexicon.ParseINI(data)
	case FormatYAML:
		return lexicon.ParseYAML(data)
	case FormatCUE:
		return CompileLexiconSource(name, data)
	default:
		return nil, fmt.Errorf("unknown lexicon format %q", format)
	}
}
