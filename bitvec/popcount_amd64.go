//go:build amd64

package bitvec

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasPOPCNT indicates whether the host CPU exposes the POPCNT instruction
// (available on essentially all amd64 CPUs since ~2008). Rank queries are the
// hottest loop in the index (every backward-search step calls rank twice), so
// the codec is chosen once at process start rather than branching per call.
var hasPOPCNT = cpu.X86.HasPOPCNT

var popcount64 = selectPopcount()

func selectPopcount() func(uint64) int {
	if hasPOPCNT {
		return bits.OnesCount64
	}
	return popcount64Software
}
