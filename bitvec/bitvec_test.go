package bitvec

import (
	"math/rand"
	"testing"
)

// TestRankSupport_Rank1_MatchesBruteForce checks rank1 against a direct
// count for a pseudo-random vector spanning several words.
func TestRankSupport_Rank1_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 500
	bv := New(n)
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		v := rng.Intn(2) == 1
		bits[i] = v
		bv.Set(i, v)
	}
	rs := NewRankSupport(bv)

	for i := 0; i <= n; i++ {
		want := 0
		for j := 0; j < i; j++ {
			if bits[j] {
				want++
			}
		}
		if got := rs.Rank1(i); got != want {
			t.Fatalf("Rank1(%d) = %d, want %d", i, got, want)
		}
	}
}

// TestRankSupport_Select1_InvertsRank checks that Select1(Rank1(i)-1) lands
// on a position whose bit is set, for every set bit.
func TestRankSupport_Select1_InvertsRank(t *testing.T) {
	bv := New(70)
	set := []int{0, 1, 5, 63, 64, 69}
	for _, i := range set {
		bv.Set(i, true)
	}
	rs := NewRankSupport(bv)

	for j, pos := range set {
		if got := rs.Select1(j); got != pos {
			t.Errorf("Select1(%d) = %d, want %d", j, got, pos)
		}
	}
	if got := rs.Select1(len(set)); got != -1 {
		t.Errorf("Select1(%d) = %d, want -1 (out of range)", len(set), got)
	}
}

// TestRankSupport_Total1 checks the total popcount matches a direct scan.
func TestRankSupport_Total1(t *testing.T) {
	bv := New(200)
	want := 0
	for i := 0; i < 200; i += 3 {
		bv.Set(i, true)
		want++
	}
	rs := NewRankSupport(bv)
	if got := rs.Total1(); got != want {
		t.Errorf("Total1() = %d, want %d", got, want)
	}
}

// TestBitVector_GetSet_RoundTrip exercises word-boundary edges (bit 63/64).
func TestBitVector_GetSet_RoundTrip(t *testing.T) {
	bv := New(128)
	for _, i := range []int{0, 1, 63, 64, 65, 127} {
		bv.Set(i, true)
		if !bv.Get(i) {
			t.Errorf("Get(%d) = false after Set(%d, true)", i, i)
		}
	}
	if bv.Get(2) {
		t.Errorf("Get(2) = true, want false (never set)")
	}
}

// TestPopcount64_AgreesWithSoftware checks the fallback SWAR implementation
// against math/bits for a spread of values, guarding the software path even
// on hosts where the hardware path is selected at init.
func TestPopcount64_AgreesWithSoftware(t *testing.T) {
	vals := []uint64{0, 1, ^uint64(0), 0xAAAAAAAAAAAAAAAA, 0x1234567890ABCDEF}
	for _, v := range vals {
		want := popcount64(v)
		if got := popcount64Software(v); got != want {
			t.Errorf("popcount64Software(%#x) = %d, want %d", v, got, want)
		}
	}
}
