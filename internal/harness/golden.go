package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot captures the complete output of a case run.
type Snapshot struct {
	Case      string    `json:"case"`
	Separator string    `json:"separator"`
	Lines     []Outcome `json:"lines"`
}

// SnapshotBytes serializes a result as indented JSON with a trailing newline.
// Field order is fixed by the struct, so output is deterministic.
func SnapshotBytes(result *Result) ([]byte, error) {
	snap := Snapshot{
		Case:      result.Name,
		Separator: result.Separator,
		Lines:     result.Lines,
	}
	if snap.Lines == nil {
		snap.Lines = []Outcome{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// AssertGolden compares the given result against a golden file.
// The golden file is stored in testdata/golden/{name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	data, err := SnapshotBytes(result)
	if err != nil {
		t.Fatalf("snapshot %s: %v", name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

// GoldenPath returns the golden file for a case file: golden/{base}.golden
// next to the case.
func GoldenPath(caseFile string) string {
	dir := filepath.Dir(caseFile)
	base := filepath.Base(caseFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "golden", name+".golden")
}

// WriteGolden writes the result snapshot as the golden file for caseFile.
func WriteGolden(caseFile string, result *Result) error {
	goldenPath := GoldenPath(caseFile)

	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}

	data, err := SnapshotBytes(result)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(goldenPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// CompareGolden reports whether the result matches the golden file for
// caseFile. The boolean exists is false when there is no golden file.
func CompareGolden(caseFile string, result *Result) (match, exists bool, err error) {
	goldenData, err := os.ReadFile(GoldenPath(caseFile))
	if os.IsNotExist(err) {
		return false, false, nil
	}
	if err != nil {
		return false, true, fmt.Errorf("failed to read golden file: %w", err)
	}

	current, err := SnapshotBytes(result)
	if err != nil {
		return false, true, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return bytes.Equal(goldenData, current), true, nil
}
