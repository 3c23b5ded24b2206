package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ListRuns returns all runs in logical order.
// Results are ordered deterministically: ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, source, lexicon_hash, separator, line_count, syllable_count
		FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Seq, &r.Source, &r.LexiconHash, &r.Separator, &r.LineCount, &r.SyllableCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadRun returns a run and its lines ordered by line number.
// Returns ErrRunNotFound if the ID has no record.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, []Line, error) {
	var r Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, seq, source, lexicon_hash, separator, line_count, syllable_count
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Seq, &r.Source, &r.LexiconHash, &r.Separator, &r.LineCount, &r.SyllableCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, nil, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, nil, fmt.Errorf("read run %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, line_no, text, marked, count, blank, metre, hash
		FROM lines
		WHERE run_id = ?
		ORDER BY line_no ASC
	`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("query lines: %w", err)
	}
	defer rows.Close()

	lines := []Line{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.RunID, &l.LineNo, &l.Text, &l.Marked, &l.Count, &l.Blank, &l.Metre, &l.Hash); err != nil {
			return Run{}, nil, fmt.Errorf("scan line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return Run{}, nil, fmt.Errorf("iterate lines: %w", err)
	}

	return r, lines, nil
}

// MetreDistribution counts the non-blank lines of a run per metre.
// Lines whose count has no metre name are grouped under "".
// Ordered by line count descending, then metre name.
func (s *Store) MetreDistribution(ctx context.Context, runID string) ([]MetreCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT metre, COUNT(*) AS n
		FROM lines
		WHERE run_id = ? AND blank = 0
		GROUP BY metre
		ORDER BY n DESC, metre COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query metres: %w", err)
	}
	defer rows.Close()

	out := []MetreCount{}
	for rows.Next() {
		var mc MetreCount
		if err := rows.Scan(&mc.Metre, &mc.Lines); err != nil {
			return nil, fmt.Errorf("scan metre: %w", err)
		}
		out = append(out, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metres: %w", err)
	}
	return out, nil
}

// FindLine returns the most recent recorded line with the given hash.
// The boolean is false when no run has recorded it.
func (s *Store) FindLine(ctx context.Context, hash string) (Line, bool, error) {
	var l Line
	err := s.db.QueryRowContext(ctx, `
		SELECT l.run_id, l.line_no, l.text, l.marked, l.count, l.blank, l.metre, l.hash
		FROM lines l
		JOIN runs r ON r.id = l.run_id
		WHERE l.hash = ?
		ORDER BY r.seq DESC, l.line_no ASC
		LIMIT 1
	`, hash).Scan(&l.RunID, &l.LineNo, &l.Text, &l.Marked, &l.Count, &l.Blank, &l.Metre, &l.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return Line{}, false, nil
	}
	if err != nil {
		return Line{}, false, fmt.Errorf("find line: %w", err)
	}
	return l, true, nil
}
