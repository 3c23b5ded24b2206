package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/sillaba/internal/store"
	"github.com/roach88/sillaba/internal/syllable"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database  string
	RunID     string // show one run
	Find      string // look up a line by content hash
	Lexicon   string // lexicon used to hash --find
	Separator string // separator used to hash --find
}

// HistoryList lists recorded runs.
type HistoryList struct {
	Runs []store.Run `json:"runs"`
}

// RenderText prints one row per run in logical order.
func (h *HistoryList) RenderText(w io.Writer) error {
	if len(h.Runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tRUN\tSOURCE\tLINES\tSYLLABLES")
	for _, r := range h.Runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", r.Seq, r.ID, r.Source, r.LineCount, r.SyllableCount)
	}
	return tw.Flush()
}

// HistoryRun shows one recorded run.
type HistoryRun struct {
	Run    store.Run          `json:"run"`
	Metres []store.MetreCount `json:"metres"`
	Lines  []store.Line       `json:"lines"`
}

// RenderText prints the run header, its metre distribution and its lines.
func (h *HistoryRun) RenderText(w io.Writer) error {
	r := h.Run
	fmt.Fprintf(w, "Run %s (seq %d)\n", r.ID, r.Seq)
	fmt.Fprintf(w, "  source:    %s\n", r.Source)
	fmt.Fprintf(w, "  separator: %s\n", r.Separator)
	fmt.Fprintf(w, "  lexicon:   %s\n", shortHash(r.LexiconHash))
	fmt.Fprintf(w, "  lines:     %d (%d syllables)\n", r.LineCount, r.SyllableCount)

	if len(h.Metres) > 0 {
		fmt.Fprintln(w, "\nMetres:")
		for _, m := range h.Metres {
			name := m.Metre
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Fprintf(w, "  %-16s %d\n", name, m.Lines)
		}
	}

	fmt.Fprintln(w, "\nLines:")
	for _, l := range h.Lines {
		if l.Blank {
			fmt.Fprintf(w, "  %4d\n", l.LineNo)
			continue
		}
		fmt.Fprintf(w, "  %4d  %s\t%d\n", l.LineNo, l.Marked, l.Count)
	}
	return nil
}

// HistoryFind is the result of a --find lookup.
type HistoryFind struct {
	Hash  string      `json:"hash"`
	Found bool        `json:"found"`
	Line  *store.Line `json:"line,omitempty"`
}

// RenderText prints the recorded line or a not-found note.
func (h *HistoryFind) RenderText(w io.Writer) error {
	if !h.Found {
		_, err := fmt.Fprintf(w, "Not recorded (hash %s)\n", shortHash(h.Hash))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%d\n  run %s, line %d\n", h.Line.Marked, h.Line.Count, h.Line.RunID, h.Line.LineNo)
	return err
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded scan runs",
		Long: `Show runs recorded in a scan log by "sillaba scan --db".

Without flags, lists all runs in the order they were recorded. --run shows
the lines and metre distribution of one run. --find looks up the most recent
recording of a line, hashed under the given lexicon and separator.

Examples:
  sillaba history --db scans.db
  sillaba history --db scans.db --run 01932c4e-...
  sillaba history --db scans.db --find "non piango"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the scan log (required)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the lines of one run")
	cmd.Flags().StringVar(&opts.Find, "find", "", "find the latest recording of a line")
	cmd.Flags().StringVar(&opts.Lexicon, "lexicon", "", "lexicon for --find hashing (default: built in)")
	cmd.Flags().StringVar(&opts.Separator, "separator", syllable.Separator, "separator for --find hashing")
	cmd.MarkFlagRequired("db")
	cmd.MarkFlagsMutuallyExclusive("run", "find")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts.RootOptions, cmd)

	// Reading must not create an empty log as a side effect.
	if _, err := os.Stat(opts.Database); errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound,
			fmt.Sprintf("scan log not found: %s", opts.Database), nil)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
	}
	defer st.Close()

	if version, err := st.SchemaVersion(); err == nil {
		formatter.VerboseLog("Scan log %s (schema v%d)", opts.Database, version)
	}

	switch {
	case opts.RunID != "":
		run, lines, err := st.ReadRun(ctx, opts.RunID)
		if errors.Is(err, store.ErrRunNotFound) {
			return formatter.Fail(ExitCommandError, ErrCodeRunNotFound,
				fmt.Sprintf("run not found: %s", opts.RunID), nil)
		}
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
		}
		metres, err := st.MetreDistribution(ctx, opts.RunID)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
		}
		return formatter.Success(&HistoryRun{Run: run, Metres: metres, Lines: lines})

	case opts.Find != "":
		lex, err := LoadLexicon(opts.Lexicon)
		if err != nil {
			return formatter.Fail(ExitCommandError, loadErrorCode(err), err.Error(), nil)
		}
		text := norm.NFC.String(strings.TrimRight(opts.Find, "\r\n"))
		hash := store.LineHash(store.LexiconHash(lex), opts.Separator, text)
		formatter.VerboseLog("Looking up %q as %s", text, hash)

		line, ok, err := st.FindLine(ctx, hash)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
		}
		result := &HistoryFind{Hash: hash, Found: ok}
		if ok {
			result.Line = &line
		}
		return formatter.Success(result)

	default:
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
		}
		return formatter.Success(&HistoryList{Runs: runs})
	}
}
