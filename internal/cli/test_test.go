package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sillaba/internal/harness"
)

const passingCase = `
name: pass
description: "Seam rules"
lines:
  - text: "non piango"
    marked: "non | pian|go"
    count: 3
  - text: "come è"
    marked: "co|me è"
`

const failingCase = `
name: fail
description: "Wrong on purpose"
lines:
  - text: "bello"
    marked: "be|llo"
`

func writeCaseFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, _, err := executeCommand(t, "", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentDir(t *testing.T) {
	_, _, err := executeCommand(t, "", "test", "/nonexistent/cases")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "cases directory not found")
}

func TestTestCommandNoCases(t *testing.T) {
	out, _, err := executeCommand(t, "", "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No cases found.")
}

func TestTestCommandPass(t *testing.T) {
	dir := t.TempDir()
	writeCaseFile(t, dir, "pass.yaml", passingCase)

	out, _, err := executeCommand(t, "", "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ pass")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
}

func TestTestCommandFailJSON(t *testing.T) {
	dir := t.TempDir()
	writeCaseFile(t, dir, "pass.yaml", passingCase)
	writeCaseFile(t, dir, "fail.yaml", failingCase)

	out, _, err := executeCommand(t, "", "test", dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)

	// Sorted by path: fail.yaml before pass.yaml.
	require.Len(t, resp.Data.Cases, 2)
	assert.Equal(t, "fail", resp.Data.Cases[0].Name)
	assert.False(t, resp.Data.Cases[0].Pass)
	assert.NotEmpty(t, resp.Data.Cases[0].Errors)
}

func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeCaseFile(t, dir, "pass.yaml", passingCase)
	writeCaseFile(t, dir, "fail.yaml", failingCase)

	out, _, err := executeCommand(t, "", "test", dir, "--filter", "pa*")
	require.NoError(t, err)
	assert.Contains(t, out, "1 total")
}

func TestTestCommandUpdateThenCompare(t *testing.T) {
	dir := t.TempDir()
	caseFile := writeCaseFile(t, dir, "pass.yaml", passingCase)

	out, _, err := executeCommand(t, "", "test", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "(golden updated)")
	assert.FileExists(t, harness.GoldenPath(caseFile))

	_, _, err = executeCommand(t, "", "test", dir)
	require.NoError(t, err)

	// Tamper with the golden file: the case now fails on the snapshot alone.
	require.NoError(t, os.WriteFile(harness.GoldenPath(caseFile), []byte("{}\n"), 0644))
	out, _, err = executeCommand(t, "", "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "does not match golden file")
}

func TestTestCommandRepoCases(t *testing.T) {
	out, _, err := executeCommand(t, "", "test", "../harness/testdata/cases")
	require.NoError(t, err)
	assert.Contains(t, out, "3 passed, 0 failed, 3 total")
}
