// Package verse runs the syllabifier over a stream of lines.
//
// It owns everything around the per-line engine: reading, NFC normalization
// (so a decomposed "è" matches the lexicon's precomposed key), blank-line
// passthrough, optional parallelism, and attaching 1-based line numbers to
// results and errors.
//
// Lines are independent. With Workers > 1 they are fanned out to a bounded
// errgroup and written back by index, so results always come out in input
// order. The lexicon is shared read-only across workers.
package verse
