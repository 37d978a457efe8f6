// Package build implements spec §4.5: assembling an Index from a masked
// superstring, and persisting/reloading one to/from the sibling-file layout
// of spec §6.
package build

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/fmindex"
	"github.com/fmsi-go/fmsi/fmsierr"
	"github.com/fmsi-go/fmsi/suffixarray"
)

// Options controls the optional parts of a build.
type Options struct {
	// Sorter overrides the suffix-sorting step (spec's "pluggable" seam).
	// Nil uses suffixarray.Default.
	Sorter suffixarray.Sorter
	// WithKLCP attaches the kLCP bit vector, required for streamed search.
	WithKLCP bool
}

// Build assembles an Index from a masked superstring S (already decoded to
// bases, uppercase-stripped) and its representedness mask m, for k-mer
// length k, per spec §4.5 steps 1-5:
//
//  1. append an implicit sentinel and suffix-sort (component 2)
//  2. derive the bit-split BWT and the dollar row from the suffix array
//  3. derive the SA-order mask
//  4. optionally attach the kLCP bit vector
func Build(bases []alphabet.Base, mask []bool, k int, opts Options) (*fmindex.Index, error) {
	if len(bases) == 0 {
		return nil, fmsierr.ErrEmptyInput
	}
	if len(bases) != len(mask) {
		return nil, &fmsierr.BuildError{Err: fmsierr.ErrMalformedMask}
	}
	if k <= 0 || k > alphabet.MaxK {
		return nil, &fmsierr.BuildError{Err: fmsierr.ErrKTooLarge}
	}

	sorter := opts.Sorter
	if sorter == nil {
		sorter = suffixarray.Default
	}

	text := make([]int, len(bases)+1)
	for i, b := range bases {
		text[i] = int(b) + 1
	}
	text[len(bases)] = 0

	sa := sorter.Sort(text, 5)

	idx := fmindex.BuildFromSA(bases, mask, k, sa)
	if opts.WithKLCP {
		idx.AttachKLCP(bases, sa)
	}
	return idx, nil
}
