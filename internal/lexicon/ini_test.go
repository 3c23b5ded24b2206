package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseINI(t *testing.T) {
	src := `
; comment
[Segments]
a = a, 26, V
c = k, 8, O
' = ', 20, G
ï = i, 22, D
`
	lex, err := ParseINI([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 4, lex.Len())

	c, ok := lex.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, Entry{Original: "c", Phonetic: "k", Sonority: 8, Class: ClassOcclusive}, c)

	ap, ok := lex.Lookup("'")
	require.True(t, ok)
	assert.Equal(t, "'", ap.Phonetic)
	assert.Equal(t, ClassGlide, ap.Class)

	d, ok := lex.Lookup("ï")
	require.True(t, ok)
	assert.Equal(t, ClassDieresis, d.Class)
}

func TestReadINI(t *testing.T) {
	lex, err := ReadINI(strings.NewReader("[Segments]\nl = l, 15, S\n"))
	require.NoError(t, err)
	_, ok := lex.Lookup("l")
	assert.True(t, ok)
}

func TestParseINIMissingSection(t *testing.T) {
	_, err := ParseINI([]byte("[Other]\na = a, 26, V\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[Segments]")
}

func TestParseINIMalformedEntries(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{"too few fields", "a = a, 26", "expected 3 fields"},
		{"single field", "a = a", "expected 3 fields"},
		{"too many fields", "a = a, 26, V, x", "expected 3 fields"},
		{"non-integer sonority", "a = a, loud, V", "not an integer"},
		{"reserved zero", "a = a, 0, V", "reserved"},
		{"out of range", "a = a, 31, V", "outside"},
		{"negative", "a = a, -2, V", "outside"},
		{"unknown class", "a = a, 26, X", "unknown natural class"},
		{"empty phonetic", "a = , 26, V", "empty phonetic"},
		{"long grapheme", "abc = a, 26, V", "longer than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseINI([]byte("[Segments]\n" + tt.line + "\n"))
			require.Error(t, err)
			assert.True(t, IsEntryError(err), "want *LexiconEntryError, got %T", err)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestParseEntryKeepsRawValue(t *testing.T) {
	_, err := ParseEntry("a", "a, 26")
	require.Error(t, err)

	var le *LexiconEntryError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "a", le.Key)
	assert.Equal(t, "a, 26", le.Value)

	_, err = ParseEntry("a", "a, 26, Q")
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "a, 26, Q", le.Value)
}

func TestParseINITwoRuneGrapheme(t *testing.T) {
	lex, err := ParseINI([]byte("[Segments]\ngn = ɲ, 14, N\n"))
	require.NoError(t, err)
	e, ok := lex.Lookup("gn")
	require.True(t, ok)
	assert.Equal(t, "ɲ", e.Phonetic)
}
