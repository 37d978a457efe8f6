package compact

import (
	"sort"

	"github.com/fmsi-go/fmsi/alphabet"
)

// MaskedSuperstring is the plain, un-indexed (S, m, k) triple compaction
// operates on -- the representation export/concatenate/compact pass data
// around in, before and after it is re-indexed by package build.
type MaskedSuperstring struct {
	Bases []alphabet.Base
	Mask  []bool
	K     int
}

// occKey turns a canonical k-mer's bases into a comparable, hashable key.
// Base values are already small non-negative integers, so the raw byte
// string round-trips without collision for any k.
func occKey(bases []alphabet.Base) string {
	buf := make([]byte, len(bases))
	for i, b := range bases {
		buf[i] = byte(b)
	}
	return string(buf)
}

// Count implements spec §4.7 step 1: enumerate every length-k window of ms,
// accumulating (total, ones) per canonical k-mer.
func Count(ms MaskedSuperstring) map[string][2]int {
	counts := make(map[string][2]int)
	k := ms.K
	for i := 0; i+k <= len(ms.Bases); i++ {
		canon := alphabet.CanonicalBases(ms.Bases[i : i+k])
		key := occKey(canon)
		entry := counts[key]
		entry[1]++ // total
		if ms.Mask[i] {
			entry[0]++ // ones
		}
		counts[key] = entry
	}
	return counts
}

// Select implements spec §4.7 step 2: K = { c : f(ones(c), total(c)) }.
// Returns the selected canonical k-mers as base slices, in a stable
// (lexicographic) order so that the rebuild below is deterministic.
func Select(counts map[string][2]int, k int, f Predicate) [][]alphabet.Base {
	var selected []string
	for key, oc := range counts {
		if f(oc[0], oc[1]) {
			selected = append(selected, key)
		}
	}
	sort.Strings(selected)

	out := make([][]alphabet.Base, len(selected))
	for i, key := range selected {
		bases := make([]alphabet.Base, k)
		for j := 0; j < k; j++ {
			bases[j] = alphabet.Base(key[j])
		}
		out[i] = bases
	}
	return out
}

// Compact runs the full spec §4.7 pipeline: count, select under f, and
// rebuild a masked superstring representing exactly the selected set.
func Compact(ms MaskedSuperstring, f Predicate) MaskedSuperstring {
	counts := Count(ms)
	selected := Select(counts, ms.K, f)
	return Global(selected, ms.K)
}
