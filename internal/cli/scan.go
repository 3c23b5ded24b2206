package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/sillaba/internal/store"
	"github.com/roach88/sillaba/internal/syllable"
	"github.com/roach88/sillaba/internal/verse"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Lexicon   string // lexicon file (default: embedded)
	Separator string // boundary glyph
	Workers   int    // concurrent lines
	Metre     bool   // print metre names
	Database  string // optional scan log
	NoCount   bool   // omit syllable counts
}

// ScanOutput is the payload of a scan.
type ScanOutput struct {
	Source    string         `json:"source"`
	Separator string         `json:"separator"`
	Lines     []verse.Result `json:"lines"`
	Run       *store.Run     `json:"run,omitempty"`

	showCount bool
	showMetre bool
}

// RenderText writes one output line per input line: the marked text, then
// the count and metre separated by tabs. Blank input lines stay blank.
func (o *ScanOutput) RenderText(w io.Writer) error {
	for _, l := range o.Lines {
		if l.Blank {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}
		line := l.Marked
		if o.showCount {
			line += fmt.Sprintf("\t%d", l.Count)
		}
		if o.showMetre && l.Metre != "" {
			line += "\t" + l.Metre
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Mark syllable boundaries in verse",
		Long: `Mark syllable boundaries in every line of a file, or stdin when no file
is given.

Each non-blank line is printed with boundaries inserted, followed by its
syllable count. Blank lines are echoed as blank lines.

Examples:
  sillaba scan canto.txt
  echo "non piango" | sillaba scan
  sillaba scan canto.txt --lexicon my.yaml --separator - --metre
  sillaba scan canto.txt --workers 8 --db scans.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return runScan(cmd.Context(), opts, source, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Lexicon, "lexicon", "", "lexicon file (.ini, .txt, .yaml, .yml, .cue); default is built in")
	cmd.Flags().StringVar(&opts.Separator, "separator", syllable.Separator, "syllable boundary glyph")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "lines processed concurrently")
	cmd.Flags().BoolVar(&opts.Metre, "metre", false, "print the metre name of each line")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite scan log")
	cmd.Flags().BoolVar(&opts.NoCount, "no-count", false, "omit syllable counts")

	return cmd
}

func runScan(ctx context.Context, opts *ScanOptions, source string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	lex, err := LoadLexicon(opts.Lexicon)
	if err != nil {
		return formatter.Fail(ExitCommandError, loadErrorCode(err), err.Error(), nil)
	}
	logger.Debug("lexicon loaded", "path", opts.Lexicon, "entries", lex.Len())

	syl, err := syllable.New(lex, syllable.WithSeparator(opts.Separator))
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeBadSeparator, err.Error(), nil)
	}

	in := cmd.InOrStdin()
	name := "-"
	if source != "" && source != "-" {
		f, err := os.Open(source)
		if err != nil {
			code := ErrCodeReadFailed
			if errors.Is(err, os.ErrNotExist) {
				code = ErrCodeNotFound
			}
			return formatter.Fail(ExitCommandError, code, err.Error(), nil)
		}
		defer f.Close()
		in = f
		name = source
	}

	results, err := verse.Process(ctx, in, syl, verse.Options{Workers: opts.Workers})
	if err != nil {
		var lineErr *verse.LineError
		if errors.As(err, &lineErr) {
			return formatter.Fail(ExitCommandError, ErrCodeLineFailed, err.Error(),
				map[string]any{"line": lineErr.Line, "token": lineErr.Token})
		}
		return formatter.Fail(ExitCommandError, ErrCodeReadFailed, err.Error(), nil)
	}
	logger.Debug("lines scanned", "source", name, "lines", len(results), "workers", opts.Workers)

	out := &ScanOutput{
		Source:    name,
		Separator: syl.Separator(),
		Lines:     results,
		showCount: !opts.NoCount,
		showMetre: opts.Metre,
	}

	if opts.Database != "" {
		run, err := recordScan(ctx, opts.Database, name, syl, results)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
		}
		out.Run = &run
		logger.Info("run recorded",
			"db", opts.Database,
			"run_id", run.ID,
			"seq", run.Seq,
			"lines", run.LineCount,
			"syllables", run.SyllableCount,
		)
	}

	return formatter.Success(out)
}

// recordScan writes the scan results to the scan log at path.
func recordScan(ctx context.Context, path, source string, syl *syllable.Syllabifier, results []verse.Result) (store.Run, error) {
	st, err := store.Open(path)
	if err != nil {
		return store.Run{}, fmt.Errorf("open scan log: %w", err)
	}
	defer st.Close()

	lexHash := store.LexiconHash(syl.Lexicon())
	lines := make([]store.Line, len(results))
	for i, r := range results {
		lines[i] = store.Line{
			LineNo: r.Line,
			Text:   r.Text,
			Marked: r.Marked,
			Count:  r.Count,
			Blank:  r.Blank,
			Metre:  r.Metre,
			Hash:   store.LineHash(lexHash, syl.Separator(), r.Text),
		}
	}

	return st.WriteRun(ctx, store.Run{
		Source:      source,
		LexiconHash: lexHash,
		Separator:   syl.Separator(),
	}, lines)
}
