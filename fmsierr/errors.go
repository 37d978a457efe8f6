// Package fmsierr defines the error kinds shared across the index, search,
// build, and compaction packages.
//
// Errors are grouped into four abstract kinds: malformed input, index
// corruption, parameter mismatch, and unknown predicate. Callers distinguish
// them with errors.Is against the sentinels below, or errors.As against the
// wrapping types for additional context.
package fmsierr

import (
	"errors"
	"fmt"
)

// Malformed input: the source file is absent, unreadable, empty, a
// multi-record FASTA, or contains a byte outside {A,C,G,T,a,c,g,t}.
var (
	ErrEmptyInput      = errors.New("masked superstring input is empty")
	ErrMultiRecord     = errors.New("masked superstring input has more than one record")
	ErrInvalidAlphabet = errors.New("masked superstring contains a character outside A,C,G,T")
	ErrNoSuchFile      = errors.New("input file not found")
	ErrMalformedMask   = errors.New("mask length disagrees with sequence length")
)

// Index corruption: a persisted sibling file is missing, truncated, or
// fails to deserialize, or rank/select supports could not be bound to it.
var (
	ErrIndexFileMissing  = errors.New("index sibling file is missing")
	ErrIndexFileCorrupt  = errors.New("index sibling file could not be parsed")
	ErrIndexEmpty        = errors.New("index is empty")
	ErrRankSelectUnbound = errors.New("rank/select support could not be bound")
)

// Parameter mismatch: a caller-supplied contract does not hold.
var (
	ErrKTooLarge          = errors.New("k exceeds the maximum supported k-mer length (64)")
	ErrKMismatch          = errors.New("supplied k disagrees with the stored k")
	ErrMinimalNeedsMin    = errors.New("minimal lookup requires a mask that minimizes the number of ones")
	ErrStreamingNeedsKLCP = errors.New("streamed queries require a loaded kLCP bit vector")
)

// Unknown demasking predicate requested via -f.
var ErrUnknownPredicate = errors.New("unknown demasking predicate")

// BuildError wraps a failure encountered while constructing an index from a
// masked superstring, attaching the offending input's name.
type BuildError struct {
	Source string
	Err    error
}

func (e *BuildError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("fmsi: build %q: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("fmsi: build: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// LoadError wraps a failure encountered while loading a persisted index,
// attaching the sibling-file base name.
type LoadError struct {
	BaseName string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("fmsi: load %q: %v", e.BaseName, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// QueryError wraps a failure encountered while evaluating a query, attaching
// the requested k-mer length for context.
type QueryError struct {
	K   int
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("fmsi: query (k=%d): %v", e.K, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
