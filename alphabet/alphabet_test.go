package alphabet

import "testing"

// TestEncode_Decode_RoundTrip verifies the codec table is a two-way bijection
// over the four nucleotide letters, in both cases.
func TestEncode_Decode_RoundTrip(t *testing.T) {
	tests := []struct {
		letter byte
		want   Base
	}{
		{'A', A}, {'a', A},
		{'C', C}, {'c', C},
		{'G', G}, {'g', G},
		{'T', T}, {'t', T},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			got, ok := Encode(tt.letter)
			if !ok {
				t.Fatalf("Encode(%q) reported invalid", tt.letter)
			}
			if got != tt.want {
				t.Errorf("Encode(%q) = %v, want %v", tt.letter, got, tt.want)
			}
			if up := Decode(got); up != ToUpper(tt.letter) {
				t.Errorf("Decode(Encode(%q)) = %q, want %q", tt.letter, up, ToUpper(tt.letter))
			}
		})
	}
}

// TestEncode_Invalid checks that non-ACGT bytes report ok=false.
func TestEncode_Invalid(t *testing.T) {
	for _, c := range []byte{'N', 'n', '$', ' ', 0, 255} {
		if _, ok := Encode(c); ok {
			t.Errorf("Encode(%q) = ok, want invalid", c)
		}
	}
}

// TestComplement_IsInvolution checks Complement(Complement(b)) == b and the
// four Watson-Crick pairings.
func TestComplement_IsInvolution(t *testing.T) {
	pairs := map[Base]Base{A: T, T: A, C: G, G: C}
	for b, want := range pairs {
		if got := Complement(b); got != want {
			t.Errorf("Complement(%v) = %v, want %v", b, got, want)
		}
		if got := Complement(Complement(b)); got != b {
			t.Errorf("Complement(Complement(%v)) = %v, want %v", b, got, b)
		}
	}
}

// TestFirstInvalid covers the streaming edge-policy scan: all-valid,
// invalid-at-start, invalid-in-middle, empty.
func TestFirstInvalid(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want int
	}{
		{"all valid", "ACGTacgt", -1},
		{"empty", "", -1},
		{"invalid at start", "NACGT", 0},
		{"invalid in middle", "ACGNT", 3},
		{"invalid at end", "ACGTN", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstInvalid([]byte(tt.seq)); got != tt.want {
				t.Errorf("FirstInvalid(%q) = %d, want %d", tt.seq, got, tt.want)
			}
		})
	}
}

// wordFromString packs a literal ACGT string into a 2-bit word, matching the
// convention used by ReverseComplementWord and the search engine's rolling
// k-mer windows (most significant base first).
func wordFromString(s string) uint64 {
	var w uint64
	for _, c := range []byte(s) {
		b, _ := Encode(c)
		w = (w << 2) | uint64(b)
	}
	return w
}

func wordToString(w uint64, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = Decode(Base(w & 3))
		w >>= 2
	}
	return string(buf)
}

// TestReverseComplementWord_KnownVectors checks concrete k-mers against their
// known reverse complements, including an even-k palindrome.
func TestReverseComplementWord_KnownVectors(t *testing.T) {
	tests := []struct {
		kmer string
		want string
	}{
		{"ACG", "CGT"},
		{"TAA", "TTA"},
		{"A", "T"},
		{"AT", "AT"},     // self-reverse-complementary (palindrome)
		{"GAATTC", "GAATTC"}, // EcoRI site, palindromic
	}
	for _, tt := range tests {
		t.Run(tt.kmer, func(t *testing.T) {
			k := len(tt.kmer)
			got := wordToString(ReverseComplementWord(wordFromString(tt.kmer), k), k)
			if got != tt.want {
				t.Errorf("rc(%s) = %s, want %s", tt.kmer, got, tt.want)
			}
		})
	}
}

// TestReverseComplementWord_Involution checks rc(rc(x)) == x across all
// 3-mers.
func TestReverseComplementWord_Involution(t *testing.T) {
	const k = 3
	for w := uint64(0); w < 1<<(2*k); w++ {
		rc := ReverseComplementWord(w, k)
		if got := ReverseComplementWord(rc, k); got != w {
			t.Errorf("rc(rc(%d)) = %d, want %d", w, got, w)
		}
	}
}

// TestCanonical_PicksSmaller checks Canonical returns min(word, rc(word)).
func TestCanonical_PicksSmaller(t *testing.T) {
	const k = 3
	acg := wordFromString("ACG")
	cgt := wordFromString("CGT")
	if got := Canonical(acg, k); got != acg {
		t.Errorf("Canonical(ACG) = %s, want ACG", wordToString(got, k))
	}
	if got := Canonical(cgt, k); got != acg {
		t.Errorf("Canonical(CGT) = %s, want ACG", wordToString(got, k))
	}
}

// TestAppendBase_RollsWindow verifies the rolling-window update matches a
// from-scratch pack of the shifted k-mer.
func TestAppendBase_RollsWindow(t *testing.T) {
	word := wordFromString("ACG")
	got := AppendBase(word, T, 3)
	want := wordFromString("CGT")
	if got != want {
		t.Errorf("AppendBase(ACG, T) = %s, want %s", wordToString(got, 3), wordToString(want, 3))
	}
}
