// core/promoter/promoter.go
package promoter

import (
	"errors"
	"fmt"

	"uspa-core/match"
)

// NotFound is the count reported when no box pair qualifies.
const NotFound = -1

// DefaultUpstream is the number of bases searched upstream of the anchor.
const DefaultUpstream = 200

// MaxBoxMismatches is the substitution budget for each box.
const MaxBoxMismatches = 1

// Config holds the two consensus boxes and the allowed spacer between them.
// The gap is measured from the end of BoxA to the start of BoxB.
type Config struct {
	BoxA   string
	BoxB   string
	MinGap int
	MaxGap int
}

// DefaultConfig returns the bacterial sigma70 -35/-10 consensus.
func DefaultConfig() Config {
	return Config{BoxA: "TTGACA", BoxB: "TATAAT", MinGap: 15, MaxGap: 19}
}

func (c Config) Validate() error {
	if c.BoxA == "" || c.BoxB == "" {
		return errors.New("promoter: box sequences must be non-empty")
	}
	if c.MinGap < 0 {
		return fmt.Errorf("promoter: min gap must be >= 0 (got %d)", c.MinGap)
	}
	if c.MaxGap < c.MinGap {
		return fmt.Errorf("promoter: max gap (%d) must be >= min gap (%d)", c.MaxGap, c.MinGap)
	}
	return nil
}

// Pair is one qualifying BoxA/BoxB combination. Positions are absolute and
// 0-indexed.
type Pair struct {
	BoxAPos  int
	BoxBPos  int
	Gap      int
	BoxASite string
	BoxBSite string
	BoxAMM   int
	BoxBMM   int
}

// Result lists every pair found in [RegionStart, RegionEnd).
type Result struct {
	Pairs       []Pair
	Count       int
	RegionStart int
	RegionEnd   int
}

// Found reports whether at least one pair qualified.
func (r Result) Found() bool { return r.Count > 0 }

// Reported returns Count, or NotFound when nothing qualified.
func (r Result) Reported() int {
	if r.Count == 0 {
		return NotFound
	}
	return r.Count
}

// Locate scans genome for BoxA candidates (<= 1 substitution) and, for each
// one, tries every gap in [MinGap, MaxGap] for a BoxB candidate. Every
// qualifying gap adds a pair, so one BoxA site may be counted several times.
//
// upstream == 0 scans the whole genome. Otherwise the region is
// [max(0, anchor-upstream), anchor), with anchor clamped to len(genome).
// A BoxB window that would cross the region end is skipped.
func Locate(genome []byte, cfg Config, anchor, upstream int) Result {
	start, end := region(len(genome), anchor, upstream)
	res := Result{RegionStart: start, RegionEnd: end}

	a, b := []byte(cfg.BoxA), []byte(cfg.BoxB)
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return res
	}

	for i := start; i <= end-la; i++ {
		mmA, ok := match.WithinMismatches(genome[i:], a, MaxBoxMismatches)
		if !ok {
			continue
		}
		for gap := cfg.MinGap; gap <= cfg.MaxGap; gap++ {
			posB := i + la + gap
			if posB+lb > end {
				continue
			}
			mmB, ok := match.WithinMismatches(genome[posB:], b, MaxBoxMismatches)
			if !ok {
				continue
			}
			res.Pairs = append(res.Pairs, Pair{
				BoxAPos:  i,
				BoxBPos:  posB,
				Gap:      gap,
				BoxASite: string(genome[i : i+la]),
				BoxBSite: string(genome[posB : posB+lb]),
				BoxAMM:   mmA,
				BoxBMM:   mmB,
			})
		}
	}
	res.Count = len(res.Pairs)
	return res
}

func region(n, anchor, upstream int) (int, int) {
	if upstream <= 0 {
		return 0, n
	}
	if anchor > n {
		anchor = n
	}
	if anchor < 0 {
		anchor = 0
	}
	start := 0
	if anchor > upstream {
		start = anchor - upstream
	}
	return start, anchor
}
