package cli

import (
	"strconv"
	"strings"

	"github.com/fmsi-go/fmsi/alphabet"
)

// encodeWindowBases converts a raw query byte sequence to bases plus a
// prefix count of invalid (non-ACGT) bytes seen so far, the same device
// search.buildValidity uses internally -- duplicated here (rather than
// exported from search) since it is a query-input concern, not a search
// engine one.
func encodeWindowBases(seq []byte) (bases []alphabet.Base, invalidPrefix []int) {
	n := len(seq)
	bases = make([]alphabet.Base, n)
	invalidPrefix = make([]int, n+1)
	for i, c := range seq {
		b, ok := alphabet.Encode(c)
		if ok {
			bases[i] = b
			invalidPrefix[i+1] = invalidPrefix[i]
		} else {
			bases[i] = alphabet.A
			invalidPrefix[i+1] = invalidPrefix[i] + 1
		}
	}
	return bases, invalidPrefix
}

// joinInt64 renders per-window identifiers comma-separated, spec §6's
// `lookup` output format.
func joinInt64(ids []int64) string {
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
