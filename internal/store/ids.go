package store

import "github.com/google/uuid"

// IDGenerator produces run IDs.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
//
// IDs sort by creation time, which keeps them readable next to seq in
// history listings. Ordering itself always uses seq.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return NewRunID()
}

// NewRunID returns a time-sortable UUIDv7 run identifier.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}
