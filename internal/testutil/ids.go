// Package testutil holds deterministic helpers for tests.
package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates predictable run IDs for tests: "<prefix>-0001",
// "<prefix>-0002", and so on.
//
// The same test with a fresh SequentialIDs writes byte-identical scan logs,
// which makes stored runs comparable against golden output.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequentialIDs creates a generator. An empty prefix becomes "run".
func NewSequentialIDs(prefix string) *SequentialIDs {
	if prefix == "" {
		prefix = "run"
	}
	return &SequentialIDs{prefix: prefix}
}

// Generate returns the next ID.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// Issued returns how many IDs have been generated.
func (g *SequentialIDs) Issued() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n
}

// Reset restarts the sequence. After Reset(), the next ID ends in 0001.
func (g *SequentialIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
