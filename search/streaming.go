package search

import (
	"math"

	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/fmindex"
	"github.com/fmsi-go/fmsi/fmsierr"
)

// chunkSize picks the streamed-search restart window length of spec §4.4:
// grows with the square root of the sequence length plus k, clamped to
// [k+10, k+400]. Forcing a from-scratch restart at these boundaries (rather
// than only on a genuine mismatch) bounds the worst case of repeated
// backward-search restarts on long, mostly-matching sequences.
func chunkSize(k, seqLen int) int {
	size := k + int(math.Sqrt(float64(seqLen)))
	if min := k + 10; size < min {
		size = min
	}
	if max := k + 400; size > max {
		size = max
	}
	return size
}

// buildValidity encodes seq and records, for every prefix length, how many
// non-ACGT bytes it has seen -- enough to answer "does the window [s, s+k)
// contain an invalid byte?" in O(1) per window via a prefix-sum difference.
func buildValidity(seq []byte) (bases []alphabet.Base, invalidPrefix []int) {
	n := len(seq)
	bases = make([]alphabet.Base, n)
	invalidPrefix = make([]int, n+1)
	for i, c := range seq {
		b, ok := alphabet.Encode(c)
		if ok {
			bases[i] = b
			invalidPrefix[i+1] = invalidPrefix[i]
		} else {
			bases[i] = alphabet.A // placeholder; window containing it is never searched
			invalidPrefix[i+1] = invalidPrefix[i] + 1
		}
	}
	return bases, invalidPrefix
}

func windowValid(invalidPrefix []int, s, k int) bool {
	return invalidPrefix[s+k] == invalidPrefix[s]
}

// rangesForSequence computes the match range of every length-k window of
// seq, scanning right to left per spec §4.4's streamed-search recipe: each
// window's range is either searched from scratch (first window, after a
// reset, or at a chunk boundary) or derived from the previous window's range
// by extending it to its (k-1)-equivalence class via kLCP and prepending the
// new incoming symbol. Windows overlapping a non-ACGT byte get the zero
// Range (empty), which both verdict and lookup callers read as "absent".
func rangesForSequence(idx *fmindex.Index, seq []byte) []Range {
	bases, invalidPrefix := buildValidity(seq)
	n := len(seq)
	k := idx.K()
	if n < k {
		return nil
	}
	ranges := make([]Range, n-k+1)
	chunk := chunkSize(k, n)

	fresh := true
	count := 0
	var rng Range
	for s := n - k; s >= 0; s-- {
		if !windowValid(invalidPrefix, s, k) {
			ranges[s] = Range{}
			fresh = true
			count = 0
			continue
		}
		if fresh || count >= chunk {
			rng = SearchKmer(idx, bases[s:s+k])
			count = 0
		} else {
			rng = ExtendRangeKLCP(idx, rng)
			rng = UpdateRange(idx, rng, bases[s])
		}
		count++
		ranges[s] = rng
		fresh = rng.Empty()
	}
	return ranges
}

// reverseComplementBytes reverse-complements a raw ACGT/acgt byte sequence,
// preserving case so streamed callers that care about the mask convention
// can still recover it (the streaming engine itself ignores case, since a
// query sequence carries no mask).
func reverseComplementBytes(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, c := range seq {
		j := len(seq) - 1 - i
		switch c {
		case 'A':
			out[j] = 'T'
		case 'C':
			out[j] = 'G'
		case 'G':
			out[j] = 'C'
		case 'T':
			out[j] = 'A'
		case 'a':
			out[j] = 't'
		case 'c':
			out[j] = 'g'
		case 'g':
			out[j] = 'c'
		case 't':
			out[j] = 'a'
		default:
			out[j] = c
		}
	}
	return out
}

// ErrStreamingNeedsKLCP is returned by the streamed engine when the index
// has no attached kLCP vector (spec §7, ParameterMismatch).
var ErrStreamingNeedsKLCP = fmsierr.ErrStreamingNeedsKLCP

// StreamedMembership computes one membership verdict (1, 0, or -1) per
// length-k window of seq under canonical semantics, combining the forward
// strand and seq's reverse complement per spec §4.4 steps 1-4. p may be nil.
func StreamedMembership(idx *fmindex.Index, seq []byte, maximizedOnes bool, p *Predictor) ([]int, error) {
	if !idx.HasKLCP() {
		return nil, ErrStreamingNeedsKLCP
	}
	k := idx.K()
	n := len(seq)
	if n < k {
		return nil, nil
	}

	fwdRanges, revRanges := dualRanges(idx, seq, p)

	out := make([]int, n-k+1)
	hits := 0
	for s := range out {
		t := n - k - s
		fwd := membershipFromRange(idx, fwdRanges[s], maximizedOnes)
		rev := membershipFromRange(idx, revRanges[t], maximizedOnes)
		v := fwd
		if rev > v {
			v = rev
		}
		out[s] = v
		if v == 1 {
			hits++
		}
	}
	p.RecordBatch(hits, len(out)-hits)
	return out, nil
}

// StreamedLookup computes one dictionary identifier per length-k window,
// minimal or non-minimal per the minimal flag, combining strands by
// preferring the first non-negative result (spec §4.4 step 4).
func StreamedLookup(idx *fmindex.Index, seq []byte, minimal bool, p *Predictor) ([]int64, error) {
	if !idx.HasKLCP() {
		return nil, ErrStreamingNeedsKLCP
	}
	k := idx.K()
	n := len(seq)
	if n < k {
		return nil, nil
	}

	fwdRanges, revRanges := dualRanges(idx, seq, p)

	out := make([]int64, n-k+1)
	hits := 0
	for s := range out {
		t := n - k - s
		fwd := lookupFromRange(idx, fwdRanges[s], minimal)
		v := fwd
		if v < 0 {
			v = lookupFromRange(idx, revRanges[t], minimal)
		}
		out[s] = v
		if v >= 0 {
			hits++
		}
	}
	p.RecordBatch(hits, len(out)-hits)
	return out, nil
}

// dualRanges computes the per-window ranges for both seq and its reverse
// complement, letting the strand predictor choose which to scan first (pure
// performance advice; both are always computed in full here, trading the
// "skip the second strand once a window is already decided" optimization
// spec §4.4 describes for simplicity -- no query result depends on this).
func dualRanges(idx *fmindex.Index, seq []byte, p *Predictor) (fwd, rev []Range) {
	rc := reverseComplementBytes(seq)
	if p.ShouldSwap() {
		rev = rangesForSequence(idx, rc)
		fwd = rangesForSequence(idx, seq)
		return
	}
	fwd = rangesForSequence(idx, seq)
	rev = rangesForSequence(idx, rc)
	return
}
