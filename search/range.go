// Package search implements backward search over an fmindex.Index: range
// extension, single and streamed membership/lookup under canonical
// (reverse-complement-aware) semantics, kLCP-based O(1) range extension, and
// the advisory strand predictor (spec §4.4, §4.9).
package search

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/fmindex"
)

// Range is a half-open SA-row interval [L, R). L == R denotes "empty":
// the pattern matched so far does not occur.
type Range struct {
	L, R int
}

// Empty reports whether the range matches nothing.
func (r Range) Empty() bool { return r.L >= r.R }

// Full returns the initial range spanning every BWT row, the starting point
// of a backward search.
func Full(idx *fmindex.Index) Range {
	return Range{0, idx.Rows()}
}

// UpdateRange extends a pattern range left by one symbol c: the new range
// matches c followed by whatever the old range matched (spec §4.4).
func UpdateRange(idx *fmindex.Index, rng Range, c alphabet.Base) Range {
	if rng.Empty() {
		return rng
	}
	base := idx.Counts()[c]
	return Range{base + idx.Rank(rng.L, c), base + idx.Rank(rng.R, c)}
}

// SearchKmer runs backward search for kmer (length must equal idx.K(), but
// this is not enforced here -- callers that need the sanity check do it once
// at a higher level), consuming symbols right to left as spec §4.4 directs.
func SearchKmer(idx *fmindex.Index, kmer []alphabet.Base) Range {
	rng := Full(idx)
	for i := len(kmer) - 1; i >= 0 && !rng.Empty(); i-- {
		rng = UpdateRange(idx, rng, kmer[i])
	}
	return rng
}

// ExtendRangeKLCP grows rng to the boundaries of its enclosing
// (k-1)-equivalence class using the kLCP bit vector, in O(1) amortized time:
// the streaming hot path spec §4.4 describes. idx must have a kLCP attached.
func ExtendRangeKLCP(idx *fmindex.Index, rng Range) Range {
	klcp := idx.KLCP()
	l, r := rng.L, rng.R
	for r > 0 && r < idx.Rows() && klcp.Get(r-1) {
		r++
	}
	for l > 0 && klcp.Get(l-1) {
		l--
	}
	return Range{l, r}
}
