package store

import "errors"

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = errors.New("run not found")

// Run is one recorded scan.
type Run struct {
	ID            string `json:"id"`
	Seq           int64  `json:"seq"`
	Source        string `json:"source"`
	LexiconHash   string `json:"lexicon_hash"`
	Separator     string `json:"separator"`
	LineCount     int    `json:"line_count"`
	SyllableCount int    `json:"syllable_count"`
}

// Line is one recorded input line of a run.
type Line struct {
	RunID  string `json:"run_id"`
	LineNo int    `json:"line"`
	Text   string `json:"text"`
	Marked string `json:"marked"`
	Count  int    `json:"count"`
	Blank  bool   `json:"blank"`
	Metre  string `json:"metre"`
	Hash   string `json:"hash"`
}

// MetreCount is one row of a run's metre distribution.
type MetreCount struct {
	Metre string `json:"metre"`
	Lines int    `json:"lines"`
}
