package fmindex

import "testing"

// TestExport_RoundTripsBuildInput checks spec §8 invariant 7: exporting a
// freshly built index recovers exactly the (S, m) it was built from.
func TestExport_RoundTripsBuildInput(t *testing.T) {
	cases := []struct {
		s    string
		mask []bool
	}{
		{"CAGGTAG", []bool{true, false, true, true, true, false, false}},
		{"CACACAT", allTrue(7)},
		{"A", []bool{true}},
		{"AAAA", []bool{true, false, false, false}},
	}
	for _, c := range cases {
		idx, _ := buildTestIndex(c.s, c.mask, 3)
		gotBases, gotMask := Export(idx)
		wantBases := toBases(c.s)
		if len(gotBases) != len(wantBases) {
			t.Fatalf("Export(%s): got %d bases, want %d", c.s, len(gotBases), len(wantBases))
		}
		for i := range wantBases {
			if gotBases[i] != wantBases[i] {
				t.Errorf("Export(%s): base %d = %v, want %v", c.s, i, gotBases[i], wantBases[i])
			}
			if gotMask[i] != c.mask[i] {
				t.Errorf("Export(%s): mask %d = %v, want %v", c.s, i, gotMask[i], c.mask[i])
			}
		}
	}
}
