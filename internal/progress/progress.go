// internal/progress/progress.go
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar is a single counter bar on a writer (usually STDERR).
// A nil *Bar is valid and does nothing, so callers can hold one
// unconditionally.
type Bar struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	total int64
}

// New returns a bar named name counting up to total, or nil when disabled
// or when there is nothing to count.
func New(w io.Writer, name string, total int, enabled bool) *Bar {
	if !enabled || w == nil || total <= 0 {
		return nil
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w), mpb.WithAutoRefresh())
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5}),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar, total: int64(total)}
}

// Update moves the bar to done. It matches the engine's progress callback.
func (b *Bar) Update(done, total int) {
	if b == nil {
		return
	}
	b.bar.SetCurrent(int64(done))
}

// Finish completes the bar (ok) or aborts it in place, then waits for the
// final render.
func (b *Bar) Finish(ok bool) {
	if b == nil {
		return
	}
	if ok {
		b.bar.SetCurrent(b.total)
	} else {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
