// Package store provides SQLite-backed storage for scan runs.
//
// The store is an append-only log with:
//   - Runs: one record per scan (source, lexicon hash, separator, totals)
//   - Lines: the marked output and syllable count of every input line
//
// # Ordering
//
// Runs are ordered by a logical seq INTEGER assigned at write time, never by
// wall-clock timestamps. All list queries use ORDER BY seq ASC, id ASC
// COLLATE BINARY so output is identical across machines.
//
// # Identity
//
// Run IDs are UUIDv7. Lexicons and lines are content-addressed with SHA-256
// and domain separation (see hash.go): two runs over the same text with the
// same lexicon and separator produce the same line hashes.
//
// # Schema
//
// schema.sql creates the tables; migrations in store.go add indexes and bump
// user_version one step at a time. A log with a user_version above the
// newest migration is refused.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Each pragma is read back after it is set.
package store
