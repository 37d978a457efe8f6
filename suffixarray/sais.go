package suffixarray

// SAIS implements the Suffix Array by Induced Sorting algorithm: linear-time
// construction of the suffix array over a small integer alphabet with a
// unique, minimal sentinel (symbol 0) at the end of s.
//
// The algorithm classifies every suffix as S-type or L-type, induces the
// order of LMS substrings from an approximate bucket sort, recursively
// sorts the (usually much shorter) reduced string of LMS substring names
// when they are not already pairwise distinct, then induces the full suffix
// order from the now-ordered LMS suffixes.
type SAIS struct{}

// Sort returns the suffix array of s (s must end with a single 0 symbol,
// the sentinel) as a slice of int32 positions.
func (SAIS) Sort(s []int, alphabetSize int) []int32 {
	n := len(s)
	sa := make([]int, n)
	lmsNames := make([]int, n)
	sais(s, alphabetSize, n, sa, lmsNames)
	out := make([]int32, n)
	for i, p := range sa {
		out[i] = int32(p)
	}
	return out
}

func sais(s []int, alphabetSize, n int, sa, lmsNames []int) []int {
	sa = sa[:n]
	for i := range sa {
		sa[i] = -1
	}
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	// sType[i] marks suffix i as S-type (suffix i < suffix i+1); the last
	// position is S-type by convention (the sentinel is the smallest symbol).
	sType := make([]bool, n)
	sType[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			sType[i] = true
		case s[i] > s[i+1]:
			sType[i] = false
		default:
			sType[i] = sType[i+1]
		}
	}

	var lmsPositions []int
	for i := 1; i < n; i++ {
		if sType[i] && !sType[i-1] {
			lmsPositions = append(lmsPositions, i)
		}
	}

	induceSort(s, sa, sType, alphabetSize, lmsPositions)

	var sortedLMS []int
	for _, pos := range sa {
		if pos > 0 && sType[pos] && !sType[pos-1] {
			sortedLMS = append(sortedLMS, pos)
		}
	}

	lmsNames = lmsNames[:n]
	for i := range lmsNames {
		lmsNames[i] = -1
	}
	name := 0
	prev := -1
	for _, pos := range sortedLMS {
		if prev != -1 && !lmsSubstringEqual(s, sType, prev, pos) {
			name++
		}
		lmsNames[pos] = name
		prev = pos
	}
	numNames := name + 1

	reduced := make([]int, 0, len(lmsPositions))
	for _, pos := range lmsPositions {
		reduced = append(reduced, lmsNames[pos])
	}

	var reducedSA []int
	if numNames < len(reduced) {
		// LMS substrings are not pairwise distinct: recurse on the reduced
		// string of their names to resolve the remaining ties.
		reducedSA = sais(reduced, numNames, len(reduced), make([]int, len(reduced)), make([]int, len(reduced)))
	} else {
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	orderedLMS := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		orderedLMS[i] = lmsPositions[idx]
	}

	for i := range sa {
		sa[i] = -1
	}
	induceSort(s, sa, sType, alphabetSize, orderedLMS)
	return sa
}

func induceSort(s []int, sa []int, sType []bool, alphabetSize int, lms []int) {
	bucketSizes := make([]int, alphabetSize)
	for _, c := range s {
		bucketSizes[c]++
	}

	tails := bucketTails(bucketSizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketHeads(bucketSizes)
	for i := range sa {
		pos := sa[i]
		if pos > 0 && !sType[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketTails(bucketSizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && sType[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
}

func bucketHeads(sizes []int) []int {
	heads := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func bucketTails(sizes []int) []int {
	tails := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

func lmsSubstringEqual(s []int, sType []bool, i, j int) bool {
	n := len(s)
	for {
		if s[i] != s[j] {
			return false
		}
		iLMS := i > 0 && sType[i] && !sType[i-1]
		jLMS := j > 0 && sType[j] && !sType[j-1]
		if iLMS && jLMS {
			return true
		}
		if iLMS != jLMS {
			return false
		}
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}
