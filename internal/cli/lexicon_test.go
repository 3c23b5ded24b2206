package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sillaba/internal/compiler"
	"github.com/roach88/sillaba/internal/lexicon"
)

func TestLexiconCheck_Valid(t *testing.T) {
	path := writeLexicon(t, "lex.ini", string(lexicon.DefaultSource()))

	out, _, err := executeCommand(t, "", "lexicon", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ "+path+": 44 entries")
	assert.NotContains(t, out, "warning")
}

func TestLexiconCheck_WarningsJSON(t *testing.T) {
	// No vowels: loads, but syllabification can never find a nucleus.
	path := writeLexicon(t, "lex.yaml", "segments:\n  b: {phonetic: b, sonority: 8, class: O}\n")

	out, _, err := executeCommand(t, "", "lexicon", "check", path, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Entries  int                        `json:"entries"`
			Hash     string                     `json:"hash"`
			Warnings []compiler.ValidationError `json:"warnings"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.Entries)
	assert.Len(t, resp.Data.Hash, 64)
	require.NotEmpty(t, resp.Data.Warnings)
	assert.Equal(t, compiler.ErrNoVowels, resp.Data.Warnings[0].Code)
}

func TestLexiconCheck_Strict(t *testing.T) {
	path := writeLexicon(t, "lex.yaml", "segments:\n  b: {phonetic: b, sonority: 8, class: O}\n")

	_, errOut, err := executeCommand(t, "", "lexicon", "check", path, "--strict")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, ErrCodeLintWarnings)
}

func TestLexiconCheck_Malformed(t *testing.T) {
	path := writeLexicon(t, "lex.ini", "[Segments]\na = a, 26\n")

	_, errOut, err := executeCommand(t, "", "lexicon", "check", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, ErrCodeMalformedEntry)
	assert.Contains(t, errOut, "expected 3 fields")
}

func TestLexiconShow_Default(t *testing.T) {
	out, _, err := executeCommand(t, "", "lexicon", "show")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 45, len(lines), "header plus one row per entry")
	assert.True(t, strings.HasPrefix(lines[0], "GRAPHEME"))
	assert.Equal(t, []string{"'", "'", "20", "G"}, strings.Fields(lines[1]))
}

func TestLexiconShow_Canonical(t *testing.T) {
	path := writeLexicon(t, "lex.yaml", "segments:\n  b: {phonetic: b, sonority: 8, class: O}\n  a: {phonetic: a, sonority: 26, class: V}\n")

	out, _, err := executeCommand(t, "", "lexicon", "show", "--lexicon", path, "--canonical")
	require.NoError(t, err)
	assert.Equal(t, "[Segments]\na = a, 26, V\nb = b, 8, O\n", out)
}

func TestLexiconShow_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "", "lexicon", "show", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Source  string          `json:"source"`
			Entries []lexicon.Entry `json:"entries"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "builtin", resp.Data.Source)
	assert.Len(t, resp.Data.Entries, 44)
}
