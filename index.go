// Package fmsi provides a succinct, canonical k-mer FM-index over masked
// superstrings for DNA.
//
// Index wraps the lower-level fmindex.Index with the package-level
// convenience surface a library caller reaches for first: build from a
// masked-superstring FASTA record, query membership or dictionary
// identifiers (single k-mer or streamed over a whole sequence), export the
// represented masked superstring back out, recompute it under a demasking
// predicate, or persist/reload it to the sibling-file layout.
//
// Basic usage:
//
//	idx, err := fmsi.BuildFromMaskedSuperstring(r, 31, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	verdict := idx.Membership(kmer, false) // 1 present, 0 absent, -1 not in S
//
// This mirrors the teacher's root-level convenience API: most callers never
// touch fmindex, search, build, compact, or setops directly.
package fmsi

import (
	"io"

	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/build"
	"github.com/fmsi-go/fmsi/compact"
	"github.com/fmsi-go/fmsi/fasta"
	"github.com/fmsi-go/fmsi/fmindex"
	"github.com/fmsi-go/fmsi/search"
	"github.com/fmsi-go/fmsi/setops"
)

// Index is a built, queryable FM-index over a masked superstring.
//
// An Index is safe for concurrent read-only use across goroutines provided
// each goroutine calls the non-streaming methods, or uses its own Index
// value for streaming -- the strand predictor is the only mutable state
// (spec §5), and each Index owns one.
type Index struct {
	idx *fmindex.Index
	p   *search.Predictor
}

// wrap adapts a built fmindex.Index into the package-level Index, giving it
// its own strand predictor.
func wrap(idx *fmindex.Index) *Index {
	return &Index{idx: idx, p: search.NewPredictor()}
}

// BuildOptions controls the optional parts of BuildFromMaskedSuperstring.
type BuildOptions struct {
	// K overrides the k-mer length; zero means "use whatever the caller
	// tracks separately" is not supported here -- K must be positive.
	K int
	// WithKLCP requests the streaming support (spec §4.5 step 5).
	WithKLCP bool
}

// BuildFromMaskedSuperstring reads a single-record masked-superstring FASTA
// stream (spec §6) and builds an Index over it at the given k.
func BuildFromMaskedSuperstring(r io.Reader, opts BuildOptions) (*Index, error) {
	bases, mask, _, err := fasta.ParseMaskedSuperstring(r)
	if err != nil {
		return nil, err
	}
	idx, err := build.Build(bases, mask, opts.K, build.Options{WithKLCP: opts.WithKLCP})
	if err != nil {
		return nil, err
	}
	return wrap(idx), nil
}

// Load reconstructs an Index from baseName's sibling files (spec §6).
// requireKLCP fails the load if the kLCP sibling is absent.
func Load(baseName string, requireKLCP bool) (*Index, error) {
	idx, err := build.Load(baseName, build.LoadOptions{RequireKLCP: requireKLCP})
	if err != nil {
		return nil, err
	}
	return wrap(idx), nil
}

// Save persists the index to baseName's sibling files.
func (ix *Index) Save(baseName string) error {
	return build.Save(ix.idx, baseName)
}

// K returns the index's k-mer length.
func (ix *Index) K() int { return ix.idx.K() }

// HasStreaming reports whether a kLCP vector is attached.
func (ix *Index) HasStreaming() bool { return ix.idx.HasKLCP() }

// Membership reports canonical single-k-mer membership: 1 present
// (represented), 0 present but unrepresented, -1 absent. maximizedOnes
// asserts the mask has been optimized (spec §4.4).
func (ix *Index) Membership(kmer []alphabet.Base, maximizedOnes bool) int {
	return search.CanonicalMembership(ix.idx, kmer, maximizedOnes)
}

// Counts returns the aggregate (ones, total) occurrence counts for kmer
// across both strands, the input to a custom demasking predicate.
func (ix *Index) Counts(kmer []alphabet.Base) (ones, total int) {
	return search.CanonicalCounts(ix.idx, kmer)
}

// Lookup returns kmer's dictionary identifier: minimal mode requires a
// minimized mask (spec §4.4); non-minimal is always available.
func (ix *Index) Lookup(kmer []alphabet.Base, minimal bool) int64 {
	if minimal {
		return search.LookupMinimal(ix.idx, kmer)
	}
	return search.LookupNonMinimal(ix.idx, kmer)
}

// Access recovers the k-mer identified by h, the inverse of Lookup.
func (ix *Index) Access(h int64, minimal bool) []alphabet.Base {
	return search.AccessKmer(ix.idx, h, minimal)
}

// StreamMembership computes one membership verdict per length-k window of
// seq, combining forward and reverse-complement strands (spec §4.4). It
// requires a loaded kLCP.
func (ix *Index) StreamMembership(seq []byte, maximizedOnes bool) ([]int, error) {
	return search.StreamedMembership(ix.idx, seq, maximizedOnes, ix.p)
}

// StreamLookup computes one dictionary identifier per length-k window of
// seq. It requires a loaded kLCP.
func (ix *Index) StreamLookup(seq []byte, minimal bool) ([]int64, error) {
	return search.StreamedLookup(ix.idx, seq, minimal, ix.p)
}

// Export recovers the indexed masked superstring byte-for-byte (spec §8
// invariant 7: export(build(S,m,k)) = (S,m)).
func (ix *Index) Export() (bases []alphabet.Base, mask []bool) {
	return fmindex.Export(ix.idx)
}

// Compact rebuilds the index after applying a demasking predicate (spec
// §4.7): every canonical k-mer satisfying f is kept, represented by exactly
// one masked occurrence in the rebuilt superstring.
func (ix *Index) Compact(f compact.Predicate) (*Index, error) {
	bases, mask := ix.Export()
	rebuilt := compact.Compact(compact.MaskedSuperstring{Bases: bases, Mask: mask, K: ix.K()}, f)
	idx, err := build.Build(rebuilt.Bases, rebuilt.Mask, rebuilt.K, build.Options{WithKLCP: ix.HasStreaming()})
	if err != nil {
		return nil, err
	}
	return wrap(idx), nil
}

func unwrapAll(indexes []*Index) []*fmindex.Index {
	out := make([]*fmindex.Index, len(indexes))
	for i, ix := range indexes {
		out[i] = ix.idx
	}
	return out
}

func rebuildFrom(ms compact.MaskedSuperstring, withKLCP bool) (*Index, error) {
	idx, err := build.Build(ms.Bases, ms.Mask, ms.K, build.Options{WithKLCP: withKLCP})
	if err != nil {
		return nil, err
	}
	return wrap(idx), nil
}

// Merge concatenates the exported masked superstrings of every index
// without compaction (spec §4.8).
func Merge(indexes []*Index, k int) (*Index, error) {
	ms, err := setops.Merge(unwrapAll(indexes), k)
	if err != nil {
		return nil, err
	}
	return rebuildFrom(ms, indexes[0].HasStreaming())
}

// Union computes the set union of indexes' canonical k-mers (spec §4.8).
func Union(indexes []*Index, k int) (*Index, error) {
	ms, err := setops.Union(unwrapAll(indexes), k)
	if err != nil {
		return nil, err
	}
	return rebuildFrom(ms, indexes[0].HasStreaming())
}

// Intersection computes the set intersection of indexes' canonical k-mers.
func Intersection(indexes []*Index, k int) (*Index, error) {
	ms, err := setops.Intersection(unwrapAll(indexes), k)
	if err != nil {
		return nil, err
	}
	return rebuildFrom(ms, indexes[0].HasStreaming())
}

// SymmetricDifference computes the symmetric set difference.
func SymmetricDifference(indexes []*Index, k int) (*Index, error) {
	ms, err := setops.SymmetricDifference(unwrapAll(indexes), k)
	if err != nil {
		return nil, err
	}
	return rebuildFrom(ms, indexes[0].HasStreaming())
}

// Difference computes a minus the union of b (spec §4.8).
func Difference(a *Index, b []*Index, k int) (*Index, error) {
	ms, err := setops.Difference(a.idx, unwrapAll(b), k)
	if err != nil {
		return nil, err
	}
	return rebuildFrom(ms, a.HasStreaming())
}
