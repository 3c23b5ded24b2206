package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue/token"

	"github.com/roach88/sillaba/internal/compiler"
	"github.com/roach88/sillaba/internal/lexicon"
)

// LoadError represents an error that occurred while loading a lexicon.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
	Err     error
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeReadFailed   = "E002" // Input read error
	ErrCodeNoFiles      = "E003" // No case files found
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeWriteFailed  = "E007" // File write error
	ErrCodeBadFormat    = "E008" // Unsupported lexicon extension
	ErrCodeStoreFailed  = "E009" // Scan log error
	ErrCodeBadSeparator = "E010" // Separator rejected
	ErrCodeLineFailed   = "E011" // A line could not be syllabified
	ErrCodeRunNotFound  = "E012" // Unknown run ID
	ErrCodeTestFailed   = "E013" // One or more cases failed
	ErrCodeLintWarnings = "E014" // Strict check with lint findings

	// Lexicon validation errors
	ErrCodeMalformedEntry = "E101" // Entry fails field/sonority/class checks
	ErrCodeSchema         = "E102" // CUE schema violation
	ErrCodeMissingSection = "E103" // No segments section
)

// LoadLexicon loads a lexicon file, dispatching on its extension.
// An empty path yields the embedded default lexicon.
// All failures are returned as *LoadError.
func LoadLexicon(path string) (*lexicon.Lexicon, error) {
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("lexicon not found: %s", path), Err: err}
		}
		if _, err := compiler.FormatFor(path); err != nil {
			return nil, &LoadError{Code: ErrCodeBadFormat, Message: err.Error(), Err: err}
		}
	}

	lex, err := compiler.LoadFile(path)
	if err != nil {
		return nil, convertLoadError(err)
	}
	return lex, nil
}

// convertLoadError maps a loader failure to a LoadError with position info.
func convertLoadError(err error) *LoadError {
	var entryErr *lexicon.LexiconEntryError
	if errors.As(err, &entryErr) {
		return &LoadError{Code: ErrCodeMalformedEntry, Message: entryErr.Error(), Err: err}
	}

	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Message: compileErr.Message,
			Pos:     compileErr.Pos,
			Err:     err,
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &LoadError{Code: ErrCodeReadFailed, Message: err.Error(), Err: err}
	}

	return &LoadError{Code: ErrCodeGeneric, Message: err.Error(), Err: err}
}

// MapFieldToErrorCode maps a compiler error field to an error code.
func MapFieldToErrorCode(field string) string {
	switch field {
	case "segments":
		return ErrCodeMissingSection
	case "cue":
		return ErrCodeSchema
	default:
		return ErrCodeMalformedEntry
	}
}

// loadErrorCode returns the code carried by err, or ErrCodeGeneric.
func loadErrorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return ErrCodeGeneric
}
