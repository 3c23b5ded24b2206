package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	src := `
segments:
  a: {phonetic: a, sonority: 26, class: V}
  "'": {phonetic: "'", sonority: 20, class: G}
  n:
    phonetic: n
    sonority: 14
    class: N
`
	lex, err := ParseYAML([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())

	n, ok := lex.Lookup("n")
	require.True(t, ok)
	assert.Equal(t, ClassNasal, n.Class)
	assert.Equal(t, 14, n.Sonority)

	_, ok = lex.Lookup("N")
	assert.True(t, ok, "uppercase alias")
}

func TestParseYAMLMissingField(t *testing.T) {
	_, err := ParseYAML([]byte("segments:\n  a: {phonetic: a, sonority: 26}\n"))
	require.Error(t, err)
	assert.True(t, IsEntryError(err))
	assert.Contains(t, err.Error(), "class")
}

func TestParseYAMLUnknownTopLevelField(t *testing.T) {
	_, err := ParseYAML([]byte("segmnts:\n  a: {phonetic: a, sonority: 26, class: V}\n"))
	require.Error(t, err)
}

func TestParseYAMLEmpty(t *testing.T) {
	_, err := ParseYAML([]byte(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestParseYAMLSegmentsNotMapping(t *testing.T) {
	_, err := ParseYAML([]byte("segments: [a, b]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")
}

func TestParseYAMLZeroSonority(t *testing.T) {
	_, err := ParseYAML([]byte("segments:\n  a: {phonetic: a, sonority: 0, class: V}\n"))
	require.Error(t, err)
	assert.True(t, IsEntryError(err))
}
