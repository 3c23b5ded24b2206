package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/sillaba/internal/lexicon"
)

// Schema constrains a CUE lexicon document. It is unified with the user's
// document before compilation, so range and class errors carry CUE positions.
const Schema = `
#Entry: {
	phonetic: string & !=""
	sonority: int & >=1 & <=30
	class:    "V" | "G" | "S" | "N" | "F" | "A" | "O" | "D"
}

segments: [string]: #Entry
`

// CompileLexiconSource compiles a CUE lexicon document.
//
//	segments: {
//		a:   {phonetic: "a", sonority: 26, class: "V"}
//		"'": {phonetic: "'", sonority: 20, class: "G"}
//	}
func CompileLexiconSource(filename string, src []byte) (*lexicon.Lexicon, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(Schema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	doc := ctx.CompileBytes(src, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	return CompileLexicon(schema.Unify(doc))
}

// CompileLexicon converts a CUE value holding a segments struct into a Lexicon.
// Uses CUE SDK's Go API directly (not CLI subprocess).
func CompileLexicon(v cue.Value) (*lexicon.Lexicon, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	segVal := v.LookupPath(cue.ParsePath("segments"))
	if !segVal.Exists() {
		return nil, &CompileError{
			Field:   "segments",
			Message: "segments is required",
			Pos:     v.Pos(),
		}
	}

	iter, err := segVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var entries []lexicon.Entry
	for iter.Next() {
		entry, err := compileEntry(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, &CompileError{
			Field:   "segments",
			Message: "at least one segment is required",
			Pos:     segVal.Pos(),
		}
	}

	lex, err := lexicon.New(entries)
	if err != nil {
		return nil, err
	}
	return lex, nil
}

// compileEntry reads one segment struct.
func compileEntry(grapheme string, v cue.Value) (lexicon.Entry, error) {
	phonetic, err := v.LookupPath(cue.ParsePath("phonetic")).String()
	if err != nil {
		return lexicon.Entry{}, formatCUEError(err)
	}

	sonority, err := v.LookupPath(cue.ParsePath("sonority")).Int64()
	if err != nil {
		return lexicon.Entry{}, formatCUEError(err)
	}

	class, err := v.LookupPath(cue.ParsePath("class")).String()
	if err != nil {
		return lexicon.Entry{}, formatCUEError(err)
	}

	entry, err := lexicon.NewEntry(grapheme, phonetic, int(sonority), class)
	if err != nil {
		return lexicon.Entry{}, &CompileError{
			Field:   fmt.Sprintf("segments.%q", grapheme),
			Message: err.Error(),
			Pos:     v.Pos(),
			Err:     err,
		}
	}
	return entry, nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
	Err     error
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Report the first error, with its position when CUE has one
	firstErr := errs[0]
	ce := &CompileError{
		Field:   "cue",
		Message: firstErr.Error(),
		Err:     err,
	}
	if positions := errors.Positions(firstErr); len(positions) > 0 {
		ce.Pos = positions[0]
	}
	return ce
}
