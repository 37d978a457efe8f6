// Package rrr implements a compressed bit vector with O(1)-ish rank and
// select, used for the SA-indexed mask (spec §4.3 / §2 row 4).
//
// Two backing representations are chosen automatically from the observed
// density, matching the trade-off spec §9 calls out ("very sparse masks
// benefit from SD-style encodings"):
//
//   - dense: a plain bitvec.BitVector with a rank9-style support -- same
//     cost model as an uncompressed RRR block vector.
//   - sparse: the sorted positions of the 1 bits (an SD/Elias-Fano-style
//     encoding), giving O(log n) rank via binary search and O(1) select by
//     direct indexing, which is far smaller than a bit-per-position
//     representation once density drops below ~1/8.
//
// The choice is transparent to callers: both representations satisfy the
// same Rank1/Select1/Get/Len contract.
package rrr

import (
	"sort"

	"github.com/fmsi-go/fmsi/bitvec"
	"github.com/fmsi-go/fmsi/internal/conv"
)

const sparseDensityThreshold = 8 // use sparse form when ones*sparseDensityThreshold < n

// Vector is a compressed bit vector with constant-time-ish rank/select.
type Vector struct {
	n    int
	ones int

	dense     *bitvec.BitVector
	denseRank *bitvec.RankSupport

	sparsePositions []uint32 // sorted ascending, only set when sparse
}

// Build constructs a Vector from an explicit bit slice, picking the dense or
// sparse backing representation from the observed number of set bits.
func Build(bits []bool) *Vector {
	n := len(bits)
	ones := 0
	for _, b := range bits {
		if b {
			ones++
		}
	}

	v := &Vector{n: n, ones: ones}
	if ones*sparseDensityThreshold < n {
		v.sparsePositions = make([]uint32, 0, ones)
		for i, b := range bits {
			if b {
				v.sparsePositions = append(v.sparsePositions, conv.IntToUint32(i))
			}
		}
		return v
	}

	bv := bitvec.New(n)
	for i, b := range bits {
		bv.Set(i, b)
	}
	v.dense = bv
	v.denseRank = bitvec.NewRankSupport(bv)
	return v
}

// Len returns the number of bits represented.
func (v *Vector) Len() int { return v.n }

// IsSparse reports which backing representation was chosen, exposed for
// tests and for persistence (the on-disk format records it explicitly rather
// than re-deriving it from density, since a loaded mask must round-trip the
// same representation it was saved with).
func (v *Vector) IsSparse() bool { return v.dense == nil }

// SparsePositions returns the sorted 1-bit positions when IsSparse is true.
func (v *Vector) SparsePositions() []uint32 { return v.sparsePositions }

// FromSparse reconstructs a Vector already known to use the sparse
// representation, e.g. when deserializing a persisted index.
func FromSparse(n int, positions []uint32) *Vector {
	return &Vector{n: n, ones: len(positions), sparsePositions: positions}
}

// FromDense reconstructs a Vector already known to use the dense
// representation.
func FromDense(bv *bitvec.BitVector) *Vector {
	return &Vector{n: bv.Len(), ones: -1, dense: bv, denseRank: bitvec.NewRankSupport(bv)}
}

// Get returns bit i.
func (v *Vector) Get(i int) bool {
	if v.dense != nil {
		return v.dense.Get(i)
	}
	pos := sort.Search(len(v.sparsePositions), func(j int) bool { return v.sparsePositions[j] >= uint32(i) })
	return pos < len(v.sparsePositions) && v.sparsePositions[pos] == uint32(i)
}

// Rank1 returns the number of 1 bits in [0, i).
func (v *Vector) Rank1(i int) int {
	if v.dense != nil {
		return v.denseRank.Rank1(i)
	}
	if i <= 0 {
		return 0
	}
	return sort.Search(len(v.sparsePositions), func(j int) bool { return v.sparsePositions[j] >= uint32(i) })
}

// Select1 returns the position of the j-th (0-based) 1 bit, or -1.
func (v *Vector) Select1(j int) int {
	if v.dense != nil {
		return v.denseRank.Select1(j)
	}
	if j < 0 || j >= len(v.sparsePositions) {
		return -1
	}
	return int(v.sparsePositions[j])
}

// Total1 returns the total number of 1 bits.
func (v *Vector) Total1() int {
	if v.dense != nil {
		return v.denseRank.Total1()
	}
	return len(v.sparsePositions)
}
