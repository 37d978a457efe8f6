package compact

import (
	"github.com/fmsi-go/fmsi/alphabet"
)

// fillerBase pads the gap between two unconnected chains in the rebuilt
// superstring. Its value is irrelevant to correctness: the filler run is
// always left unmasked, so it never contributes a represented k-mer: the
// window-level entries it participates in all have mask 0 at their start.
const fillerBase = alphabet.A

// Global rebuilds a masked superstring representing exactly the canonical
// k-mer set `selected`, via the greedy forward-extension algorithm spec
// §4.7 step 3 describes: pre-sort for locality, then repeatedly chain
// k-mers together by (k-1)-character overlap, marking one occurrence of
// each with mask=1.
//
// This is original code meeting the stated contract (locality-preserving
// pre-sort + greedy (k-1)-overlap forward extension into one concatenation,
// one masked occurrence per canonical k-mer); the upstream kmercamel
// Global/PartialPreSort sources were not present in the retrieved reference
// material to adapt directly.
func Global(selected [][]alphabet.Base, k int) MaskedSuperstring {
	if len(selected) == 0 {
		return MaskedSuperstring{K: k}
	}
	if k == 1 {
		// No (k-1)-overlap to chain on; each 1-mer is its own chain.
		return singleBaseSuperstring(selected, k)
	}

	// Index candidates by their (k-1)-length prefix for O(1) extension
	// lookups; selected is already lexicographically sorted (from Select),
	// which is the locality-preserving order step 3 asks for -- adjacent
	// k-mers in sorted order tend to share long prefixes, so chains built
	// by scanning in this order stay local.
	byPrefix := make(map[string][]int, len(selected))
	for i, kmer := range selected {
		key := occKey(kmer[:k-1])
		byPrefix[key] = append(byPrefix[key], i)
	}

	used := make([]bool, len(selected))
	var bases []alphabet.Base
	var mask []bool

	takeNext := func(prefix string) int {
		candidates := byPrefix[prefix]
		for i, idx := range candidates {
			if !used[idx] {
				byPrefix[prefix] = candidates[i+1:]
				return idx
			}
		}
		return -1
	}

	for start := 0; start < len(selected); start++ {
		if used[start] {
			continue
		}
		if len(bases) > 0 {
			for i := 0; i < k-1; i++ {
				bases = append(bases, fillerBase)
				mask = append(mask, false)
			}
		}

		cur := selected[start]
		used[start] = true
		markPos := len(bases)
		bases = append(bases, cur...)
		mask = append(mask, make([]bool, k)...)
		mask[markPos] = true

		for {
			suffix := occKey(bases[len(bases)-(k-1):])
			next := takeNext(suffix)
			if next < 0 {
				break
			}
			used[next] = true
			nextKmer := selected[next]
			markPos := len(bases) - (k - 1)
			bases = append(bases, nextKmer[k-1])
			mask = append(mask, false)
			mask[markPos] = true
		}
	}

	return MaskedSuperstring{Bases: bases, Mask: mask, K: k}
}

// singleBaseSuperstring handles k=1, where no overlap chaining applies:
// every selected base gets its own masked position, separated by nothing
// (there is no "run of k-1 zeros" invariant to maintain when k-1 == 0).
func singleBaseSuperstring(selected [][]alphabet.Base, k int) MaskedSuperstring {
	bases := make([]alphabet.Base, len(selected))
	mask := make([]bool, len(selected))
	for i, kmer := range selected {
		bases[i] = kmer[0]
		mask[i] = true
	}
	return MaskedSuperstring{Bases: bases, Mask: mask, K: k}
}
