// Package suffixarray provides the pluggable suffix-sorting step used by
// Build (spec §4.5 step 1, component 2). The spec treats the suffix sorter
// as an external collaborator ("Pluggable... an implementer may use any
// correct linear-time suffix sorter"); Sorter is the seam, and SAIS is the
// bundled default implementation.
package suffixarray

// Sorter produces the suffix array of s, where s is already encoded as small
// non-negative integers (one per symbol, sentinel = 0) and alphabetSize is
// one greater than the largest symbol value appearing in s.
type Sorter interface {
	Sort(s []int, alphabetSize int) []int32
}

// Default is the suffix sorter used by Build when no Sorter is supplied.
var Default Sorter = SAIS{}
