package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/sillaba/internal/compiler"
	"github.com/roach88/sillaba/internal/syllable"
)

// Run executes a case and returns the result.
//
// Execution flow:
// 1. Load the case lexicon (or the embedded default)
// 2. Build a syllabifier with the case separator
// 3. Mark every line and check it
// 4. Return result with pass/fail, outcomes, and errors
//
// A non-nil error means the case could not run at all; check failures are
// reported in the result. A nil logger discards logs.
func Run(ctx context.Context, c *Case, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	lex, err := compiler.LoadFile(c.Lexicon)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	var opts []syllable.Option
	if c.Separator != "" {
		opts = append(opts, syllable.WithSeparator(c.Separator))
	}
	syl, err := syllable.New(lex, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build syllabifier: %w", err)
	}

	result := NewResult(c.Name, syl.Separator())
	for i, lc := range c.Lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := i + 1
		got, err := syl.Line(lc.Text)
		if err != nil {
			result.AddError(fmt.Sprintf("line %d %q: %v", n, lc.Text, err))
			continue
		}
		result.Lines = append(result.Lines, Outcome{Line: n, LineResult: got})

		for _, checkErr := range CheckLine(n, lc, got, syl.Separator()) {
			result.AddError(checkErr.Error())
		}

		logger.Debug("case line checked",
			"case", c.Name,
			"line", n,
			"marked", got.Marked,
			"count", got.Count,
		)
	}

	logger.Info("case completed",
		"case", c.Name,
		"lines", len(c.Lines),
		"pass", result.Pass,
	)

	return result, nil
}
