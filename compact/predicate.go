// Package compact implements spec §4.7: demasking predicates, the
// canonical-k-mer counting pass, and the greedy superstring rebuild that
// normalizes a masked superstring to represent exactly the k-mers a
// predicate selects.
package compact

import (
	"strconv"
	"strings"

	"github.com/fmsi-go/fmsi/fmsierr"
)

// Predicate decides, given a canonical k-mer's (ones, total) occurrence
// counts, whether that k-mer belongs in the rebuilt masked superstring.
type Predicate func(ones, total int) bool

// Or is f_or: at least one masked occurrence (spec §6 `-f or`, used by
// union).
func Or(ones, total int) bool { return ones > 0 }

// And is f_and: every occurrence masked (spec §6 `-f and`).
func And(ones, total int) bool { return ones == total }

// All is the CLI's `-f all`, the and-over-uniform-input predicate: when
// every contributing index's mask is all-ones (as every set-algebra input
// is treated once exported), it coincides with And; kept as its own name
// since it reads a query's intent more plainly than `and` does.
func All(ones, total int) bool { return ones == total }

// Xor is f_xor: an odd number of masked occurrences (spec §6 `-f xor`,
// used by symmetric difference).
func Xor(ones, total int) bool { return ones%2 == 1 }

// RangeRS builds the f_r_to_s predicate: ones falls in [r,s] inclusive,
// regardless of total. m-m (intersection) and 1-1 (difference) from
// spec §4.8 are both instances with r==s.
func RangeRS(r, s int) Predicate {
	return func(ones, total int) bool { return ones >= r && ones <= s }
}

// Parse resolves a `-f` predicate name per spec §6 and
// original_source/src/functions.h's mask_function dispatch: the four fixed
// names, or an "R-S" numeric range (e.g. "2-2" for exact-two, "1-1" for
// exactly-one).
func Parse(name string) (Predicate, error) {
	switch name {
	case "or":
		return Or, nil
	case "and":
		return And, nil
	case "all":
		return All, nil
	case "xor":
		return Xor, nil
	}

	if i := strings.IndexByte(name, '-'); i > 0 && i+1 < len(name) {
		r, errR := strconv.Atoi(name[:i])
		s, errS := strconv.Atoi(name[i+1:])
		if errR == nil && errS == nil {
			return RangeRS(r, s), nil
		}
	}
	return nil, fmsierr.ErrUnknownPredicate
}
