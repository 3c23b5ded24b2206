package compiler

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sillaba/internal/lexicon"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"sonority.txt", FormatINI},
		{"lex.INI", FormatINI},
		{"lex.yaml", FormatYAML},
		{"dir/lex.yml", FormatYAML},
		{"lex.cue", FormatCUE},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatFor("lex.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported lexicon extension")
}

func TestLoadFile_EmptyPathIsDefault(t *testing.T) {
	lex, err := LoadFile("")
	require.NoError(t, err)

	def, err := lexicon.Default()
	require.NoError(t, err)
	assert.Same(t, def, lex)
}

func TestLoadFile_AllFormatsAgree(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"lex.ini":  "[Segments]\na = a, 26, V\nb = b, 8, O\n",
		"lex.yaml": "segments:\n  a: {phonetic: a, sonority: 26, class: V}\n  b: {phonetic: b, sonority: 8, class: O}\n",
		"lex.cue":  "segments: {\n\ta: {phonetic: \"a\", sonority: 26, class: \"V\"}\n\tb: {phonetic: \"b\", sonority: 8, class: \"O\"}\n}\n",
	}

	var canon []string
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		lex, err := LoadFile(path)
		require.NoError(t, err, name)
		canon = append(canon, lex.Canonical())
	}

	require.Len(t, canon, 3)
	assert.Equal(t, canon[0], canon[1])
	assert.Equal(t, canon[0], canon[2])
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.ini"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadFile_MalformedEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Segments]\na = a, 0, V\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, lexicon.IsEntryError(err))
}
