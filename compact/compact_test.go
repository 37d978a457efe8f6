package compact

import (
	"sort"
	"testing"

	"github.com/fmsi-go/fmsi/alphabet"
)

func toBases(s string) []alphabet.Base {
	out := make([]alphabet.Base, len(s))
	for i := 0; i < len(s); i++ {
		b, ok := alphabet.Encode(s[i])
		if !ok {
			panic("bad test fixture")
		}
		out[i] = b
	}
	return out
}

func toMask(s string) []bool {
	out := make([]bool, len(s))
	for i, c := range s {
		out[i] = c == '1'
	}
	return out
}

func canonString(s string) string {
	return string(canonBytes(toBases(s)))
}

func canonBytes(bases []alphabet.Base) []byte {
	canon := alphabet.CanonicalBases(bases)
	out := make([]byte, len(canon))
	for i, b := range canon {
		out[i] = alphabet.Decode(b)
	}
	return out
}

// bruteForceCounts directly implements spec §3's definition of total/ones,
// independent of Count's hash-table bookkeeping, as an oracle.
func bruteForceCounts(s string, mask []bool, k int) map[string][2]int {
	out := map[string][2]int{}
	bases := toBases(s)
	for i := 0; i+k <= len(bases); i++ {
		key := canonString(s[i : i+k])
		entry := out[key]
		entry[1]++
		if mask[i] {
			entry[0]++
		}
		out[key] = entry
	}
	return out
}

func TestCount_MatchesBruteForceCounts(t *testing.T) {
	s := "ACGTAGATA"
	mask := toMask("110000110")
	k := 3
	ms := MaskedSuperstring{Bases: toBases(s), Mask: mask, K: k}

	got := Count(ms)
	want := bruteForceCounts(s, mask, k)
	if len(got) != len(want) {
		t.Fatalf("got %d distinct canonical k-mers, want %d", len(got), len(want))
	}
	for key, w := range want {
		g, ok := got[key]
		if !ok || g != w {
			t.Errorf("counts[%q] = %v, want %v (ok=%v)", key, g, w, ok)
		}
	}
}

func TestParse_RecognizesNamedPredicates(t *testing.T) {
	for _, name := range []string{"or", "and", "all", "xor"} {
		if _, err := Parse(name); err != nil {
			t.Errorf("Parse(%q): %v", name, err)
		}
	}
}

func TestParse_ParsesRangeRS(t *testing.T) {
	f, err := Parse("1-1")
	if err != nil {
		t.Fatalf("Parse(1-1): %v", err)
	}
	if !f(1, 3) {
		t.Error("1-1 should accept ones=1")
	}
	if f(2, 3) || f(0, 3) {
		t.Error("1-1 should reject ones=0 or ones=2")
	}
}

func TestParse_RejectsUnknown(t *testing.T) {
	if _, err := Parse("bogus"); err == nil {
		t.Error("expected an error for an unrecognized predicate name")
	}
}

func TestOr_SelectsAnyMaskedOccurrence(t *testing.T) {
	if !Or(1, 5) {
		t.Error("Or(1,5) should select")
	}
	if Or(0, 5) {
		t.Error("Or(0,5) should not select")
	}
}

func TestAnd_RequiresEveryOccurrenceMasked(t *testing.T) {
	if !And(3, 3) {
		t.Error("And(3,3) should select")
	}
	if And(2, 3) {
		t.Error("And(2,3) should not select")
	}
}

func TestXor_RequiresOddCount(t *testing.T) {
	if !Xor(1, 4) || Xor(2, 4) {
		t.Error("Xor should select only odd ones counts")
	}
}

// TestCompact_RecoversSelectedSetExactly checks the contract spec §4.7
// states directly: re-counting the rebuilt superstring under `or` recovers
// exactly the canonical set Select chose, for a range of predicates.
func TestCompact_RecoversSelectedSetExactly(t *testing.T) {
	s := "ACGTAGATACCGGT"
	mask := toMask("11000011000110")
	k := 3
	ms := MaskedSuperstring{Bases: toBases(s), Mask: mask, K: k}
	counts := Count(ms)

	for _, predName := range []string{"or", "and", "xor"} {
		f, err := Parse(predName)
		if err != nil {
			t.Fatalf("Parse(%s): %v", predName, err)
		}
		want := Select(counts, k, f)
		rebuilt := Global(want, k)

		gotCounts := Count(rebuilt)
		var got [][]alphabet.Base
		for key, oc := range gotCounts {
			if oc[0] > 0 { // any masked occurrence at all, i.e. `or`
				bases := make([]alphabet.Base, k)
				for j := 0; j < k; j++ {
					bases[j] = alphabet.Base(key[j])
				}
				got = append(got, bases)
			}
		}

		if len(got) != len(want) {
			t.Errorf("predicate %s: rebuilt represents %d canonical k-mers, want %d", predName, len(got), len(want))
			continue
		}
		wantKeys := keySet(want)
		gotKeys := keySet(got)
		sort.Strings(wantKeys)
		sort.Strings(gotKeys)
		for i := range wantKeys {
			if wantKeys[i] != gotKeys[i] {
				t.Errorf("predicate %s: rebuilt k-mer set disagrees with selection: got %v, want %v", predName, gotKeys, wantKeys)
				break
			}
		}
	}
}

func keySet(kmers [][]alphabet.Base) []string {
	out := make([]string, len(kmers))
	for i, kmer := range kmers {
		out[i] = occKey(kmer)
	}
	return out
}

// TestGlobal_EmptySelectionYieldsEmptySuperstring checks the boundary case
// of a predicate that selects nothing.
func TestGlobal_EmptySelectionYieldsEmptySuperstring(t *testing.T) {
	ms := Global(nil, 3)
	if len(ms.Bases) != 0 || len(ms.Mask) != 0 {
		t.Errorf("expected an empty superstring, got bases=%v mask=%v", ms.Bases, ms.Mask)
	}
}

// TestGlobal_SingleBaseAlphabetAtKEqualsOne checks the k=1 boundary named
// in spec §8.
func TestGlobal_SingleBaseAlphabetAtKEqualsOne(t *testing.T) {
	selected := [][]alphabet.Base{{alphabet.A}, {alphabet.C}}
	ms := Global(selected, 1)
	if len(ms.Bases) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(ms.Bases))
	}
	for i, m := range ms.Mask {
		if !m {
			t.Errorf("position %d: expected mask=1 for a k=1 selected base", i)
		}
	}
}
