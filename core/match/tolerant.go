// core/match/tolerant.go
package match

// MismatchCount returns the number of positions where window and target
// differ. It panics if the lengths differ.
func MismatchCount(window, target []byte) int {
	if len(window) != len(target) {
		panic("match: MismatchCount on unequal lengths")
	}
	mm := 0
	for j := range target {
		if window[j] != target[j] {
			mm++
		}
	}
	return mm
}

// WithinMismatches compares window[:len(target)] to target and stops as soon
// as the mismatch budget is exceeded. It returns the mismatch count and
// whether the window qualifies. A window shorter than target never qualifies.
func WithinMismatches(window, target []byte, maxMM int) (int, bool) {
	n := len(target)
	if len(window) < n {
		return 0, false
	}
	mm := 0
	for j := 0; j < n; j++ {
		if window[j] != target[j] {
			mm++
			if mm > maxMM {
				return mm, false
			}
		}
	}
	return mm, true
}

// WithinOne reports whether window matches target exactly or with a single
// substituted base.
func WithinOne(window, target []byte) bool {
	_, ok := WithinMismatches(window, target, 1)
	return ok
}

// Identity is the fraction of positions at which a and b carry the same base,
// computed over the full length with no gap model. It panics if the lengths
// differ; two empty sequences have identity 0.
func Identity(a, b []byte) float64 {
	if len(a) != len(b) {
		panic("match: Identity on unequal lengths")
	}
	if len(a) == 0 {
		return 0
	}
	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	return float64(same) / float64(len(a))
}
