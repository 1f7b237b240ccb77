// core/match/match.go
package match

import "bytes"

/* --------------------------- CountMatches ------------------------------- */

// CountMatches counts every exact occurrence of pattern in haystack,
// overlapping occurrences included ("ACGT" in "ACGTACGT" counts 2).
//
// Occurrences whose start index falls in [exStart, exStart+exLen) are skipped.
// exLen <= 0 disables the exclusion. An empty pattern counts 0.
func CountMatches(pattern, haystack []byte, exStart, exLen int) int {
	pl := len(pattern)
	if pl == 0 || len(haystack) < pl {
		return 0
	}
	exEnd := exStart + exLen
	last := len(haystack) - pl

	n := 0
	for i := 0; i <= last; {
		j := bytes.Index(haystack[i:], pattern)
		if j < 0 {
			break
		}
		pos := i + j
		if exLen <= 0 || pos < exStart || pos >= exEnd {
			n++
		}
		i = pos + 1
	}
	return n
}

// positions returns the start index of every overlapping occurrence of
// pattern in haystack.
func positions(pattern, haystack []byte) []int {
	pl := len(pattern)
	if pl == 0 || len(haystack) < pl {
		return nil
	}
	var out []int
	for i := 0; i <= len(haystack)-pl; {
		j := bytes.Index(haystack[i:], pattern)
		if j < 0 {
			break
		}
		out = append(out, i+j)
		i += j + 1
	}
	return out
}
