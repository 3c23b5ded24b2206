package verse

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/sillaba/internal/syllable"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Options controls Process.
type Options struct {
	// Workers is the number of lines processed concurrently. Values below 2
	// process sequentially.
	Workers int

	// SkipNormalize disables NFC normalization of input lines.
	SkipNormalize bool
}

// Result is one processed line.
type Result struct {
	// Line is the 1-based line number in the input.
	Line int `json:"line"`

	syllable.LineResult

	// Metre names the line length, when the count has a name.
	Metre string `json:"metre,omitempty"`
}

// Process reads r line by line and marks every line with s.
// Results are returned in input order. The first failure aborts processing
// and is returned as a *LineError.
func Process(ctx context.Context, r io.Reader, s *syllable.Syllabifier, opts Options) ([]Result, error) {
	lines, err := ReadLines(ctx, r, !opts.SkipNormalize)
	if err != nil {
		return nil, err
	}
	return ProcessLines(ctx, lines, s, opts.Workers)
}

// ProcessLines marks already-read lines. workers < 2 runs sequentially.
func ProcessLines(ctx context.Context, lines []string, s *syllable.Syllabifier, workers int) ([]Result, error) {
	results := make([]Result, len(lines))

	if workers < 2 {
		for i, text := range lines {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := processLine(s, i+1, text)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, text := range lines {
		if gctx.Err() != nil {
			break
		}
		i, text := i, text // per-iteration copy; module targets go 1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := processLine(s, i+1, text)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func processLine(s *syllable.Syllabifier, n int, text string) (Result, error) {
	res, err := s.Line(text)
	if err != nil {
		return Result{}, newLineError(n, err)
	}
	out := Result{Line: n, LineResult: res}
	if !res.Blank {
		out.Metre = Metre(res.Count)
	}
	return out, nil
}

// ReadLines splits r into lines, dropping line terminators ("\n" or "\r\n").
// With normalize set every line is converted to NFC.
func ReadLines(ctx context.Context, r io.Reader, normalize bool) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		if normalize {
			line = norm.NFC.String(line)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", len(lines)+1, err)
	}
	return lines, nil
}
