package store

import (
	"context"
	"fmt"
)

// WriteRun records a run and its lines in one transaction.
//
// If run.ID is empty one is taken from the store's IDGenerator. Seq is always assigned here as
// MAX(seq)+1, so callers never supply ordering. LineCount and SyllableCount
// are derived from lines. Each line's RunID is overwritten with the run's ID.
//
// Returns the run as stored.
func (s *Store) WriteRun(ctx context.Context, run Run, lines []Line) (Run, error) {
	if run.ID == "" {
		run.ID = s.ids.Generate()
	}
	run.LineCount = len(lines)
	run.SyllableCount = 0
	for _, l := range lines {
		run.SyllableCount += l.Count
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&run.Seq); err != nil {
		return Run{}, fmt.Errorf("write run: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, seq, source, lexicon_hash, separator, line_count, syllable_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Seq,
		run.Source,
		run.LexiconHash,
		run.Separator,
		run.LineCount,
		run.SyllableCount,
	)
	if err != nil {
		return Run{}, fmt.Errorf("write run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO lines
		(run_id, line_no, text, marked, count, blank, metre, hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return Run{}, fmt.Errorf("write run: prepare lines: %w", err)
	}
	defer stmt.Close()

	for _, l := range lines {
		if _, err := stmt.ExecContext(ctx,
			run.ID,
			l.LineNo,
			l.Text,
			l.Marked,
			l.Count,
			l.Blank,
			l.Metre,
			l.Hash,
		); err != nil {
			return Run{}, fmt.Errorf("write run: line %d: %w", l.LineNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("write run: commit: %w", err)
	}

	return run, nil
}
