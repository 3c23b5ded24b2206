package harness

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoldenPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("cases", "golden", "basic.golden"),
		GoldenPath(filepath.Join("cases", "basic.yaml")))
}

func TestSnapshotBytes_Deterministic(t *testing.T) {
	c, err := LoadCase("testdata/cases/basic.yaml")
	require.NoError(t, err)

	r1, err := Run(context.Background(), c, nil)
	require.NoError(t, err)
	r2, err := Run(context.Background(), c, nil)
	require.NoError(t, err)

	b1, err := SnapshotBytes(r1)
	require.NoError(t, err)
	b2, err := SnapshotBytes(r2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestSnapshotBytes_EmptyLines(t *testing.T) {
	data, err := SnapshotBytes(&Result{Name: "empty", Separator: "|"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lines": []`)
}

func TestWriteAndCompareGolden(t *testing.T) {
	dir := t.TempDir()
	caseFile := filepath.Join(dir, "basic.yaml")

	c, err := LoadCase("testdata/cases/basic.yaml")
	require.NoError(t, err)
	result, err := Run(context.Background(), c, nil)
	require.NoError(t, err)

	match, exists, err := CompareGolden(caseFile, result)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.False(t, match)

	require.NoError(t, WriteGolden(caseFile, result))

	match, exists, err = CompareGolden(caseFile, result)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, match)

	// Same bytes as the checked-in snapshot.
	written, err := os.ReadFile(GoldenPath(caseFile))
	require.NoError(t, err)
	want, err := os.ReadFile("testdata/golden/basic.golden")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(written))

	result.Lines[0].Marked = "changed"
	match, _, err = CompareGolden(caseFile, result)
	require.NoError(t, err)
	assert.False(t, match)
}
