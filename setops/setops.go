// Package setops implements spec §4.8: union, intersection, difference,
// symmetric difference, and plain merge over indexed masked superstrings,
// each by exporting and concatenating the inputs and (except for Merge)
// running compaction with the predicate that selects the right k-mer set.
package setops

import (
	"github.com/fmsi-go/fmsi/alphabet"
	"github.com/fmsi-go/fmsi/compact"
	"github.com/fmsi-go/fmsi/fmindex"
	"github.com/fmsi-go/fmsi/fmsierr"
)

// exportAll exports every input index and concatenates the results into one
// (bases, mask) pair sharing k, the common first step of every operation in
// this package.
func exportAll(indexes []*fmindex.Index, k int) (compact.MaskedSuperstring, error) {
	if len(indexes) == 0 {
		return compact.MaskedSuperstring{}, fmsierr.ErrEmptyInput
	}
	var bases []alphabet.Base
	var mask []bool
	for _, idx := range indexes {
		if idx.K() != k {
			return compact.MaskedSuperstring{}, fmsierr.ErrKMismatch
		}
		b, m := fmindex.Export(idx)
		bases = append(bases, b...)
		mask = append(mask, m...)
	}
	return compact.MaskedSuperstring{Bases: bases, Mask: mask, K: k}, nil
}

// Merge concatenates the exported masked superstrings of every input index
// without compaction -- the raw building block every other operation here
// also performs, exposed on its own per spec §6's `merge` subcommand.
func Merge(indexes []*fmindex.Index, k int) (compact.MaskedSuperstring, error) {
	return exportAll(indexes, k)
}

// Union implements spec §4.8: concatenate, compact with f=or.
func Union(indexes []*fmindex.Index, k int) (compact.MaskedSuperstring, error) {
	concat, err := exportAll(indexes, k)
	if err != nil {
		return compact.MaskedSuperstring{}, err
	}
	return compact.Compact(concat, compact.Or), nil
}

// SymmetricDifference implements spec §4.8: concatenate, compact with f=xor.
func SymmetricDifference(indexes []*fmindex.Index, k int) (compact.MaskedSuperstring, error) {
	concat, err := exportAll(indexes, k)
	if err != nil {
		return compact.MaskedSuperstring{}, err
	}
	return compact.Compact(concat, compact.Xor), nil
}

// Intersection implements spec §4.8: concatenate all m inputs, compact with
// f=m-m ("ones equals m"), i.e. a canonical k-mer survives only if every
// input contributed a masked occurrence of it.
func Intersection(indexes []*fmindex.Index, k int) (compact.MaskedSuperstring, error) {
	concat, err := exportAll(indexes, k)
	if err != nil {
		return compact.MaskedSuperstring{}, err
	}
	m := len(indexes)
	return compact.Compact(concat, compact.RangeRS(m, m)), nil
}

// Difference implements spec §4.8 (A minus B, B may be several indexes
// treated as one set): concatenate [export(A), export(B), export(B)],
// compact with f=1-1. Every k-mer in A alone contributes ones=1 (from A)
// or ones=0 (absent from A); every k-mer also in B additionally
// contributes 2 (B's export appears twice), pushing it to 3 or 2, neither
// of which is exactly 1 -- so exactly-one selects A∖B.
func Difference(a *fmindex.Index, b []*fmindex.Index, k int) (compact.MaskedSuperstring, error) {
	if a.K() != k {
		return compact.MaskedSuperstring{}, fmsierr.ErrKMismatch
	}
	bExported, err := exportAll(b, k)
	if err != nil {
		return compact.MaskedSuperstring{}, err
	}
	aBases, aMask := fmindex.Export(a)

	var bases []alphabet.Base
	var mask []bool
	bases = append(bases, aBases...)
	mask = append(mask, aMask...)
	bases = append(bases, bExported.Bases...)
	mask = append(mask, bExported.Mask...)
	bases = append(bases, bExported.Bases...)
	mask = append(mask, bExported.Mask...)

	concat := compact.MaskedSuperstring{Bases: bases, Mask: mask, K: k}
	return compact.Compact(concat, compact.RangeRS(1, 1)), nil
}
