//go:build !amd64

package bitvec

import "math/bits"

// On non-amd64 platforms there is no POPCNT feature to probe; trust the
// compiler intrinsic math/bits already lowers to on every architecture Go
// supports with a hardware population count (arm64, etc).
var popcount64 = bits.OnesCount64
