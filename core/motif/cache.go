// core/motif/cache.go
package motif

import (
	"github.com/shenwei356/kmers"

	"uspa-core/match"
)

// maxSpectrumK is the longest k-mer that fits a uint64 code.
const maxSpectrumK = 32

// controlCounter answers "how many times does s occur in the control" for the
// duration of one scan. Seed-length queries are served from a k-mer spectrum
// built in one pass over the control; longer motifs are counted directly and
// memoised.
type controlCounter struct {
	control  []byte
	k        int
	spectrum map[uint64]int // nil when the control could not be encoded
	memo     map[string]int
}

func newControlCounter(control []byte, k int) *controlCounter {
	cc := &controlCounter{control: control, k: k, memo: make(map[string]int)}
	if k <= maxSpectrumK && len(control) >= k {
		cc.spectrum = buildSpectrum(control, k)
	}
	return cc
}

// buildSpectrum counts every overlapping k-mer of seq. A base outside the
// 2-bit alphabet abandons the spectrum.
func buildSpectrum(seq []byte, k int) map[uint64]int {
	counts := make(map[uint64]int, 1<<10)
	for i := 0; i+k <= len(seq); i++ {
		code, err := kmers.Encode(seq[i : i+k])
		if err != nil {
			return nil
		}
		counts[code]++
	}
	return counts
}

func (c *controlCounter) count(s []byte) int {
	if len(s) == c.k && c.spectrum != nil {
		if code, err := kmers.Encode(s); err == nil {
			return c.spectrum[code]
		}
	}
	if n, ok := c.memo[string(s)]; ok {
		return n
	}
	n := match.CountMatches(s, c.control, 0, 0)
	c.memo[string(s)] = n
	return n
}
