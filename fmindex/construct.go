package fmindex

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/bitvec"
	"github.com/fmsi-go/fmsi/bitvec/rrr"
)

// BuildFromSA assembles an Index's bit-split BWT and SA-order mask from an
// already-computed suffix array (spec §4.5 steps 2-4). sa must be the
// suffix array of bases with an implicit sentinel appended (len(sa) ==
// len(bases)+1); the sentinel's own row is identified as the unique row
// whose SA value is 0 (spec's dollar_position, §3).
//
// The BWT's dollar row has no real predecessor character; following the
// construction this library's rank formula assumes, that row is left
// holding the placeholder value A (0), and Rank's A-branch subtracts it
// back out for any query position past the dollar row.
func BuildFromSA(bases []alphabet.Base, mask []bool, k int, sa []int32) *Index {
	n := len(bases)
	rows := n + 1

	bwt := make([]alphabet.Base, rows)
	saMaskBits := make([]bool, rows)
	dollarPosition := -1
	for i, p32 := range sa {
		pos := int(p32)
		if pos == 0 {
			dollarPosition = i
			bwt[i] = alphabet.A
			continue
		}
		bwt[i] = bases[pos-1]
		if pos < n {
			saMaskBits[i] = mask[pos]
		}
	}

	acGT := bitvec.New(rows)
	var countA, countC, countG, countT int
	for i, b := range bwt {
		switch b {
		case alphabet.G, alphabet.T:
			acGT.Set(i, true)
		}
		switch b {
		case alphabet.A:
			countA++
		case alphabet.C:
			countC++
		case alphabet.G:
			countG++
		case alphabet.T:
			countT++
		}
	}

	acBits := make([]bool, rows-countGT(acGT))
	gtBits := make([]bool, countGT(acGT))
	acIdx, gtIdx := 0, 0
	for i, b := range bwt {
		if acGT.Get(i) {
			gtBits[gtIdx] = b == alphabet.T
			gtIdx++
		} else {
			acBits[acIdx] = b == alphabet.C
			acIdx++
		}
	}
	ac := bitvec.New(len(acBits))
	for i, v := range acBits {
		ac.Set(i, v)
	}
	gt := bitvec.New(len(gtBits))
	for i, v := range gtBits {
		gt.Set(i, v)
	}

	counts := [4]int{1, 1 + countA, 1 + countA + countC, 1 + countA + countC + countG}
	_ = countT // counts[4] would be counts[3]+countT == rows; not stored (C-array convention, spec §3)

	saMask := rrr.Build(saMaskBits)

	return New(acGT, ac, gt, saMask, counts, dollarPosition, k, n, nil)
}

func countGT(acGT *bitvec.BitVector) int {
	n := 0
	for i := 0; i < acGT.Len(); i++ {
		if acGT.Get(i) {
			n++
		}
	}
	return n
}

// AttachKLCP computes and attaches the kLCP bit vector (spec §4.4, §GLOSSARY):
// bit i is set iff the suffixes at SA rows i and i+1 share at least k-1
// leading characters. This is what lets search.ExtendRangeKLCP grow a
// matched range to the enclosing (k-1)-equivalence class in O(1) amortized
// time, the step streamed search uses to fold in one more incoming symbol
// without restarting the backward search from scratch.
func (idx *Index) AttachKLCP(bases []alphabet.Base, sa []int32) {
	idx.klcp = buildKLCP(bases, sa, idx.k)
}

func buildKLCP(bases []alphabet.Base, sa []int32, k int) *bitvec.BitVector {
	n := len(bases)
	text := make([]int, n+1)
	for i, b := range bases {
		text[i] = int(b) + 1
	}
	text[n] = 0

	lcp := kasaiLCP(text, sa) // lcp[j] = LCP(SA[j-1], SA[j]), lcp[0] unused

	rows := len(sa)
	klcp := bitvec.New(rows)
	for i := 0; i < rows-1; i++ {
		if lcp[i+1] >= k-1 {
			klcp.Set(i, true)
		}
	}
	// klcp[rows-1] stays 0: there is no row `rows` to pair it with.
	return klcp
}

// kasaiLCP computes the LCP array of text's suffix array sa in O(n) using
// Kasai's algorithm: lcp[i] is the length of the common prefix shared by the
// suffixes at SA-rows i-1 and i (lcp[0] is always 0, there being no
// predecessor row).
func kasaiLCP(text []int, sa []int32) []int {
	n := len(text)
	rank := make([]int, n)
	for i, p := range sa {
		rank[p] = i
	}
	lcp := make([]int, n)
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] > 0 {
			j := int(sa[rank[i]-1])
			for i+h < n && j+h < n && text[i+h] == text[j+h] {
				h++
			}
			lcp[rank[i]] = h
			if h > 0 {
				h--
			}
		} else {
			h = 0
		}
	}
	return lcp
}
