// core/motif/engine.go
package motif

import (
	"context"
	"sort"

	"uspa-core/match"
)

// ProgressFunc is called after each seed with the number of seeds processed
// and the total.
type ProgressFunc func(done, total int)

// Engine discovers motifs enriched in the window upstream of an anchor.
// An Engine holds no per-scan state; one value may run several scans, but
// not concurrently when a progress callback is set.
type Engine struct {
	cfg      Config
	progress ProgressFunc
}

// New returns an engine for cfg. The configuration is validated by Scan.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config { return e.cfg }

// SetProgress installs fn as the progress callback (nil disables it).
func (e *Engine) SetProgress(fn ProgressFunc) { e.progress = fn }

// Result is the outcome of one scan.
type Result struct {
	Motifs      []Motif // retained motifs, stable-sorted by Start
	Headlines   Headlines
	WindowStart int
	WindowEnd   int
	Seeds       int // seeds cut from the window
	Screened    int // seeds that met MinHits and were extended
}

// Scan cuts the window [anchor-Window, anchor) into overlapping seeds of
// length SeedLen and runs each one through screening, extension and the
// acceptance filters.
//
// ctx is checked between seeds only: a seed is either fully processed or not
// started. On cancellation Scan returns ctx.Err() and no partial result.
func (e *Engine) Scan(ctx context.Context, genome, control []byte, anchor int) (Result, error) {
	cfg := e.cfg
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := cfg.CheckWindow(anchor, len(genome)); err != nil {
		return Result{}, err
	}
	start := anchor - cfg.Window

	k := cfg.SeedLen
	total := cfg.Window - k + 1
	cc := newControlCounter(control, k)

	res := Result{WindowStart: start, WindowEnd: anchor, Seeds: total}
	var kept []Motif

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		pos := start + i
		seed := genome[pos : pos+k]

		hits := match.CountMatches(seed, genome, pos, k)
		if hits >= cfg.MinHits {
			res.Screened++
			m := Motif{
				Seq:          string(seed),
				Start:        pos,
				Length:       k,
				RealCount:    hits,
				ControlCount: cc.count(seed),
			}
			m = e.Grow(genome, m)
			if m, ok := e.accept(genome, cc, m); ok {
				kept = append(kept, m)
			}
		}
		if e.progress != nil {
			e.progress(i+1, total)
		}
	}

	// Headlines break ties by scan order, so pick them before sorting.
	res.Headlines = Select(kept, anchor)
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	res.Motifs = kept
	return res, nil
}

// Extend runs one extension round on m. The left side is tried first; the
// right side only when the left one did not commit. A candidate commits when
// its genome count, excluding occurrences that start inside m's current span,
// is at least MinHits.
//
// It returns m unchanged and false when neither side commits.
func (e *Engine) Extend(genome []byte, m Motif) (Motif, bool) {
	if m.Start > 0 {
		cand := make([]byte, 0, m.Length+1)
		cand = append(cand, genome[m.Start-1])
		cand = append(cand, m.Seq...)
		if n := match.CountMatches(cand, genome, m.Start, m.Length); n >= e.cfg.MinHits {
			return Motif{
				Seq:          string(cand),
				Start:        m.Start - 1,
				Length:       m.Length + 1,
				RealCount:    n,
				ControlCount: m.ControlCount,
			}, true
		}
	}
	if end := m.End(); end < len(genome) {
		cand := make([]byte, 0, m.Length+1)
		cand = append(cand, m.Seq...)
		cand = append(cand, genome[end])
		if n := match.CountMatches(cand, genome, m.Start, m.Length); n >= e.cfg.MinHits {
			return Motif{
				Seq:          string(cand),
				Start:        m.Start,
				Length:       m.Length + 1,
				RealCount:    n,
				ControlCount: m.ControlCount,
			}, true
		}
	}
	return m, false
}

// Grow extends m until a round commits nothing.
func (e *Engine) Grow(genome []byte, m Motif) Motif {
	for progress := true; progress; {
		m, progress = e.Extend(genome, m)
	}
	return m
}

// accept recounts a stabilised motif and applies the length and fold-change
// filters.
func (e *Engine) accept(genome []byte, cc *controlCounter, m Motif) (Motif, bool) {
	if m.Length < e.cfg.MinMotifLen {
		return m, false
	}
	seq := []byte(m.Seq)
	m.RealCount = match.CountMatches(seq, genome, m.Start, m.Length)
	m.ControlCount = cc.count(seq)
	m.FoldChange = FoldChange(m.RealCount, m.ControlCount)
	if m.FoldChange <= e.cfg.FoldChangeMin {
		return m, false
	}
	return m, true
}
