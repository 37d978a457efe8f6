package fmindex

import "github.com/fmsi-go/fmsi/alphabet"

// lf computes the LF-mapping of row i: the row whose suffix is one
// character longer, i.e. the row an inverse-BWT walk steps to after
// reading L[i]. Same formula search.UpdateRange applies to a whole range,
// specialized to the singleton range [i, i+1).
func lf(idx *Index, i int) int {
	c := idx.Access(i)
	return idx.counts[c] + idx.Rank(i, c)
}

// Export reconstructs the masked superstring (S, m) an Index was built
// from, by walking the BWT backward via repeated LF-mapping starting from
// row 0 (the row whose suffix is the sentinel alone, which sorts first).
// Each step recovers one character and its SA-order mask bit, filling S
// from its last position back to its first -- spec §8 invariant 7
// (export∘build = identity).
func Export(idx *Index) ([]alphabet.Base, []bool) {
	n := idx.n
	bases := make([]alphabet.Base, n)
	mask := make([]bool, n)

	row := 0
	for pos := n - 1; pos >= 0; pos-- {
		c := idx.Access(row)
		row = lf(idx, row)
		bases[pos] = c
		mask[pos] = idx.SAMaskAt(row)
	}
	return bases, mask
}
