package search

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/fmindex"
)

// SingleMembership implements spec §4.4's single_membership contract for one
// strand: 1 if some row in the match range has sa_mask=1, 0 if the range is
// non-empty but every row is unmarked, -1 if the k-mer does not occur at all.
//
// maximizedOnes lets the caller assert the mask has been optimized so that a
// present canonical k-mer's single 1 lands at the range's first row; in that
// case membership costs one bit lookup instead of a scan of the whole range.
func SingleMembership(idx *fmindex.Index, pattern []alphabet.Base, maximizedOnes bool) int {
	return membershipFromRange(idx, SearchKmer(idx, pattern), maximizedOnes)
}

// membershipFromRange applies the single_membership verdict rule to an
// already-computed range, shared by SingleMembership and the streaming
// engine (which computes ranges incrementally rather than from scratch).
func membershipFromRange(idx *fmindex.Index, rng Range, maximizedOnes bool) int {
	if rng.Empty() {
		return -1
	}
	if maximizedOnes {
		if idx.SAMaskAt(rng.L) {
			return 1
		}
		return 0
	}
	for i := rng.L; i < rng.R; i++ {
		if idx.SAMaskAt(i) {
			return 1
		}
	}
	return 0
}

// lookupFromRange applies the minimal/non-minimal lookup rule to an
// already-computed range, shared by LookupMinimal/LookupNonMinimal and the
// streaming engine.
func lookupFromRange(idx *fmindex.Index, rng Range, minimal bool) int64 {
	if rng.Empty() {
		return -1
	}
	if minimal {
		if !idx.SAMaskAt(rng.L) {
			return -1
		}
		return int64(idx.MaskRank1(rng.L))
	}
	return int64(rng.L)
}

// GeneralCounts implements spec §4.4's general_counts: the number of
// represented (mask=1) rows and the total row count in pattern's match
// range. Returns (0,0) for a pattern that does not occur.
func GeneralCounts(idx *fmindex.Index, pattern []alphabet.Base) (ones, total int) {
	rng := SearchKmer(idx, pattern)
	if rng.Empty() {
		return 0, 0
	}
	return idx.MaskRank1(rng.R) - idx.MaskRank1(rng.L), rng.R - rng.L
}

// isSelfReverseComplement reports whether a k-mer equals its own reverse
// complement (an even-length palindromic spelling), the case spec §4.4 and
// §8 invariant 10 call out where forward and rc contributions must be
// counted once, not twice.
//
// build.Build rejects k > alphabet.MaxK, so every k-mer reaching this
// function fits in a packed word; the check runs there (PackWord +
// ReverseComplementWord) rather than allocating and comparing a
// reverse-complemented slice.
func isSelfReverseComplement(kmer []alphabet.Base) bool {
	w := alphabet.PackWord(kmer)
	return w == alphabet.ReverseComplementWord(w, len(kmer))
}

// CanonicalMembership combines forward and reverse-complement membership
// under the `or` rule of spec §4.4: present if either strand is 1, else 0 if
// either strand's range is non-empty, else -1.
func CanonicalMembership(idx *fmindex.Index, kmer []alphabet.Base, maximizedOnes bool) int {
	fwd := SingleMembership(idx, kmer, maximizedOnes)
	if isSelfReverseComplement(kmer) {
		return fwd
	}
	rev := SingleMembership(idx, alphabet.ReverseComplement(kmer), maximizedOnes)
	if rev > fwd {
		return rev
	}
	return fwd
}

// CanonicalCounts combines forward and reverse-complement general_counts for
// the aggregate-predicate path (spec §4.4), summing both strands' (ones,
// total) unless the k-mer is its own reverse complement, in which case the
// forward contribution alone is used.
func CanonicalCounts(idx *fmindex.Index, kmer []alphabet.Base) (ones, total int) {
	o1, t1 := GeneralCounts(idx, kmer)
	if isSelfReverseComplement(kmer) {
		return o1, t1
	}
	o2, t2 := GeneralCounts(idx, alphabet.ReverseComplement(kmer))
	return o1 + o2, t1 + t2
}

// LookupMinimal implements the minimal dictionary lookup of spec §4.4:
// requires a minimized mask (single 1 per canonical class); returns
// kmer_order(range.L) when membership is 1, else -1.
func LookupMinimal(idx *fmindex.Index, pattern []alphabet.Base) int64 {
	return lookupFromRange(idx, SearchKmer(idx, pattern), true)
}

// LookupNonMinimal implements the non-minimal dictionary lookup: returns the
// range start whenever the pattern occurs at all (membership >= 0), else -1.
// Faster than the minimal form since it needs no mask rank.
func LookupNonMinimal(idx *fmindex.Index, pattern []alphabet.Base) int64 {
	return lookupFromRange(idx, SearchKmer(idx, pattern), false)
}

// AccessKmer recovers the k-mer identified by h, the inverse of
// LookupMinimal (minimal=true) or LookupNonMinimal (minimal=false), per spec
// §4.6's repeated select-on-the-first-column extraction.
//
// The extraction walks the BWT backward via LF-mapping, which yields the
// k-mer's characters from its last position to its first; AccessKmer
// reverses that order before returning so the result reads left to right.
func AccessKmer(idx *fmindex.Index, h int64, minimal bool) []alphabet.Base {
	var pos int
	if minimal {
		pos = idx.MaskSelect1(int(h))
	} else {
		pos = int(h)
	}

	k := idx.K()
	out := make([]alphabet.Base, k)
	counts := idx.Counts()
	bounds := [4]int{counts[1], counts[2], counts[3], idx.Rows()}

	for i := 0; i < k; i++ {
		var c alphabet.Base
		for c = alphabet.A; c < alphabet.T; c++ {
			if pos < bounds[c] {
				break
			}
		}
		out[k-1-i] = c
		pos = idx.Select(c, pos-counts[c]+1)
	}
	return out
}
