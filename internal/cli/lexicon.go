package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/sillaba/internal/compiler"
	"github.com/roach88/sillaba/internal/lexicon"
	"github.com/roach88/sillaba/internal/store"
)

// LexiconCheckOptions holds flags for lexicon check.
type LexiconCheckOptions struct {
	*RootOptions
	Strict bool // lint findings fail the check
}

// LexiconShowOptions holds flags for lexicon show.
type LexiconShowOptions struct {
	*RootOptions
	Lexicon   string
	Canonical bool // print the canonical INI form
}

// LexiconCheckResult holds the outcome of checking a lexicon file.
type LexiconCheckResult struct {
	File     string                     `json:"file"`
	Entries  int                        `json:"entries"`
	Hash     string                     `json:"hash"`
	Warnings []compiler.ValidationError `json:"warnings"`
}

// RenderText prints a one-line summary and any lint findings.
func (r *LexiconCheckResult) RenderText(w io.Writer) error {
	fmt.Fprintf(w, "✓ %s: %d entries\n", r.File, r.Entries)
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  warning %s\n", warn.Error())
	}
	return nil
}

// LexiconShowResult lists lexicon entries.
type LexiconShowResult struct {
	Source  string          `json:"source"`
	Hash    string          `json:"hash"`
	Entries []lexicon.Entry `json:"entries"`

	canonical string
}

// RenderText prints a grapheme table, or the canonical INI form.
func (r *LexiconShowResult) RenderText(w io.Writer) error {
	if r.canonical != "" {
		_, err := io.WriteString(w, r.canonical)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GRAPHEME\tPHONETIC\tSONORITY\tCLASS")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Original, e.Phonetic, e.Sonority, e.Class.Code())
	}
	return tw.Flush()
}

// NewLexiconCommand creates the lexicon command group.
func NewLexiconCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect and validate sonority lexicons",
		Long: `Inspect and validate sonority lexicons.

A lexicon maps each grapheme to its phonetic spelling, sonority (1-30) and
natural class (V G S N F A O D). Lexicons can be written as INI ([Segments]
section, "grapheme = phonetic, sonority, class"), YAML or CUE.`,
	}

	cmd.AddCommand(newLexiconCheckCommand(rootOpts))
	cmd.AddCommand(newLexiconShowCommand(rootOpts))

	return cmd
}

func newLexiconCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LexiconCheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Load and lint a lexicon file",
		Long: `Load a lexicon file and report its entry count.

Malformed entries fail the load (exit 2). Lint findings such as consonants
at vowel sonority are reported as warnings; with --strict they fail the
check (exit 1).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexiconCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "treat lint warnings as failures")

	return cmd
}

func runLexiconCheck(opts *LexiconCheckOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	lex, err := LoadLexicon(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, loadErrorCode(err), err.Error(), nil)
	}
	formatter.VerboseLog("Loaded %d entries from %s", lex.Len(), path)

	warnings := compiler.Lint(lex)
	if warnings == nil {
		warnings = []compiler.ValidationError{}
	}

	result := &LexiconCheckResult{
		File:     path,
		Entries:  lex.Len(),
		Hash:     store.LexiconHash(lex),
		Warnings: warnings,
	}

	if opts.Strict && len(warnings) > 0 {
		return formatter.Fail(ExitFailure, ErrCodeLintWarnings,
			fmt.Sprintf("%d lint warning(s) in %s", len(warnings), path), warnings)
	}

	return formatter.Success(result)
}

func newLexiconShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LexiconShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List lexicon entries sorted by grapheme",
		Long: `List the entries of a lexicon sorted by grapheme.

Without --lexicon the built-in Italian lexicon is shown. --canonical prints
the INI form used for content hashing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexiconShow(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Lexicon, "lexicon", "", "lexicon file (default: built in)")
	cmd.Flags().BoolVar(&opts.Canonical, "canonical", false, "print the canonical INI form")

	return cmd
}

func runLexiconShow(opts *LexiconShowOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	lex, err := LoadLexicon(opts.Lexicon)
	if err != nil {
		return formatter.Fail(ExitCommandError, loadErrorCode(err), err.Error(), nil)
	}

	source := opts.Lexicon
	if source == "" {
		source = "builtin"
	}

	result := &LexiconShowResult{
		Source:  source,
		Hash:    store.LexiconHash(lex),
		Entries: lex.Entries(),
	}
	if opts.Canonical {
		result.canonical = lex.Canonical()
	}

	return formatter.Success(result)
}
