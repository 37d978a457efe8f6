// Package fmindex implements the succinct FM-index core described in spec
// §2 rows 3-5 and §4.2-§4.3: the bit-split BWT (ac_gt/ac/gt), the
// SA-indexed mask, and the optional kLCP bit vector, plus the rank/access/
// select operations the search engine drives.
package fmindex

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/bitvec"
	"github.com/fmsi-go/fmsi/bitvec/rrr"
)

// Index is the immutable succinct representation of one masked superstring.
// Every exported method is read-only; the only "mutation" the system ever
// performs is rebuilding the rank supports after a bulk word-level load,
// which happens once, inside Load (see build.Load), never mid-query.
type Index struct {
	acGT     *bitvec.BitVector
	acGTRank *bitvec.RankSupport
	ac       *bitvec.BitVector
	acRank   *bitvec.RankSupport
	gt       *bitvec.BitVector
	gtRank   *bitvec.RankSupport

	saMask *rrr.Vector

	counts         [4]int
	dollarPosition int

	klcp *bitvec.BitVector // nil if not built

	k int
	n int // length of S, excluding the sentinel; total BWT rows = n+1
}

// New assembles an Index from its already-built parts. Build (package
// build) is the usual entry point; New is exposed for the persistence
// layer, which reconstructs an Index field-by-field from sibling files.
func New(acGT, ac, gt *bitvec.BitVector, saMask *rrr.Vector, counts [4]int, dollarPosition, k, n int, klcp *bitvec.BitVector) *Index {
	return &Index{
		acGT:           acGT,
		acGTRank:       bitvec.NewRankSupport(acGT),
		ac:             ac,
		acRank:         bitvec.NewRankSupport(ac),
		gt:             gt,
		gtRank:         bitvec.NewRankSupport(gt),
		saMask:         saMask,
		counts:         counts,
		dollarPosition: dollarPosition,
		klcp:           klcp,
		k:              k,
		n:              n,
	}
}

// ACGT, AC, GT expose the three raw bit-split BWT vectors, used by the
// persistence layer (package build) to serialize an Index; query code
// should go through Rank/Access/Select instead.
func (idx *Index) ACGT() *bitvec.BitVector { return idx.acGT }
func (idx *Index) AC() *bitvec.BitVector   { return idx.ac }
func (idx *Index) GT() *bitvec.BitVector   { return idx.gt }

// SAMask exposes the raw SA-indexed mask vector, used by the persistence
// layer; query code should go through SAMaskAt/MaskRank1/MaskSelect1.
func (idx *Index) SAMask() *rrr.Vector { return idx.saMask }

// K returns the k-mer length this index was built for.
func (idx *Index) K() int { return idx.k }

// N returns the length of the indexed superstring S (excluding the sentinel).
func (idx *Index) N() int { return idx.n }

// Rows returns the total number of BWT rows (n+1).
func (idx *Index) Rows() int { return idx.n + 1 }

// Counts returns the cumulative C-array: counts[c] is the number of BWT
// rows whose suffix starts with a character that sorts before symbol c,
// i.e. counts[0]=1 (reserving the sentinel row) and
// counts[c] = counts[c-1] + (count of symbol c-1 in L) for c=1,2,3.
func (idx *Index) Counts() [4]int { return idx.counts }

// DollarPosition returns the unique BWT row i with SA[i] = 0.
func (idx *Index) DollarPosition() int { return idx.dollarPosition }

// HasKLCP reports whether the kLCP bit vector was built, required for
// O(1)-amortized streamed range extension (spec §4.4).
func (idx *Index) HasKLCP() bool { return idx.klcp != nil }

// KLCP exposes the raw kLCP bit vector (nil if HasKLCP is false).
func (idx *Index) KLCP() *bitvec.BitVector { return idx.klcp }

// SAMaskAt reports the SA-order mask bit at row i: m[SA[i]] if SA[i] < n,
// else 0 (the dollar row never carries a represented mark).
func (idx *Index) SAMaskAt(i int) bool { return idx.saMask.Get(i) }

// MaskRank1 returns rank1 over the SA-order mask, the "order function" of
// spec §4.3 that yields a dense k-mer identifier once the mask is
// minimized.
func (idx *Index) MaskRank1(i int) int { return idx.saMask.Rank1(i) }

// MaskSelect1 is the inverse of MaskRank1, used by Access (spec §4.6).
func (idx *Index) MaskSelect1(j int) int { return idx.saMask.Select1(j) }

// MaskTotal1 returns |K|: the total number of represented k-mer classes
// when the mask is minimized.
func (idx *Index) MaskTotal1() int { return idx.saMask.Total1() }

// Rank returns the number of occurrences of symbol c in L[0:i), the BWT's
// last column, per the bit-split formula of spec §4.2.
func (idx *Index) Rank(i int, c alphabet.Base) int {
	gtPos := idx.acGTRank.Rank1(i)
	switch {
	case c == alphabet.G:
		t := idx.gtRank.Rank1(gtPos)
		return gtPos - t
	case c == alphabet.T:
		return idx.gtRank.Rank1(gtPos)
	case c == alphabet.C:
		return idx.acRank.Rank1(i - gtPos)
	default: // alphabet.A
		acPos := idx.acRank.Rank1(i - gtPos)
		count := i - gtPos - acPos
		if i >= idx.dollarPosition+1 {
			count--
		}
		return count
	}
}

// Access recovers L[i], the BWT's last-column symbol at row i.
func (idx *Index) Access(i int) alphabet.Base {
	gtPos := idx.acGTRank.Rank1(i)
	if idx.acGT.Get(i) {
		if idx.gt.Get(gtPos) {
			return alphabet.T
		}
		return alphabet.G
	}
	if idx.ac.Get(i - gtPos) {
		return alphabet.C
	}
	return alphabet.A
}

// Select returns the BWT row holding the i-th (1-based) occurrence of
// symbol c in L, the inverse of Rank/Access combined -- needed only by the
// inverse-access path (spec §4.6).
func (idx *Index) Select(c alphabet.Base, i int) int {
	switch c {
	case alphabet.G, alphabet.T:
		var subPos int
		if c == alphabet.G {
			subPos = selectZero(idx.gt, idx.gtRank, i)
		} else {
			subPos = idx.gtRank.Select1(i - 1)
		}
		if subPos < 0 {
			return -1
		}
		return idx.acGTRank.Select1(subPos)
	default: // A or C
		var subPos int
		if c == alphabet.C {
			subPos = idx.acRank.Select1(i - 1)
		} else {
			subPos = selectZero(idx.ac, idx.acRank, i)
		}
		if subPos < 0 {
			return -1
		}
		return selectZeroInACGT(idx, subPos)
	}
}

// selectZeroInACGT maps a position within the ac/gt "A or C" half-space
// (subPos, 0-based) back to the absolute BWT row: the subPos-th (0-based)
// row where ac_gt = 0.
func selectZeroInACGT(idx *Index, subPos int) int {
	return selectZero(idx.acGT, idx.acGTRank, subPos+1)
}

// selectZero returns the position of the j-th (1-based) zero bit in bv,
// derived from rank1 since bv carries no dedicated zero-select index:
// rank0(p) = p - rank1(p) is monotonic, so binary search over it locates
// the same position select1 would via a direct index.
func selectZero(bv *bitvec.BitVector, rank *bitvec.RankSupport, j int) int {
	lo, hi := 0, bv.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		if rank.Rank0(mid+1) < j {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= bv.Len() || bv.Get(lo) {
		return -1
	}
	return lo
}
