package store

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/roach88/sillaba/internal/lexicon"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainLexicon = "sillaba/lexicon/v1"
	DomainLine    = "sillaba/line/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + part1 + 0x00 + part2 ...)
// The null byte separators prevent boundary ambiguity between parts.
func hashWithDomain(domain string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(domain))
	for _, p := range parts {
		h.Write([]byte{0x00})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// LexiconHash identifies a lexicon by its canonical entries, independent of
// the file format it was loaded from.
func LexiconHash(lex *lexicon.Lexicon) string {
	return hashWithDomain(DomainLexicon, lex.Canonical())
}

// LineHash identifies one input line as syllabified under a given lexicon
// and separator. Equal hashes imply equal marked output.
func LineHash(lexiconHash, separator, text string) string {
	return hashWithDomain(DomainLine, lexiconHash, separator, text)
}
