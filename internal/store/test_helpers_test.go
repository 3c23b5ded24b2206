package store

import (
	"fmt"
	"path/filepath"
	"testing"
)

// createTestStore creates a new temp-dir store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestLines builds n non-blank lines with the given syllable count.
func createTestLines(n, count int, metre string) []Line {
	lines := make([]Line, n)
	for i := range lines {
		text := fmt.Sprintf("line %d", i+1)
		lines[i] = Line{
			LineNo: i + 1,
			Text:   text,
			Marked: text,
			Count:  count,
			Metre:  metre,
			Hash:   LineHash("lex", "|", text),
		}
	}
	return lines
}
