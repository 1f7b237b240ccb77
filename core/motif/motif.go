// core/motif/motif.go
package motif

// Epsilon is added to the control count so an absent control motif yields a
// large finite fold change.
const Epsilon = 1e-6

// Motif is an enriched subsequence of the genome. It is a value: extension
// returns a new Motif and never edits one in place.
type Motif struct {
	Seq          string
	Start        int // 0-based offset of Seq in the genome
	Length       int // == len(Seq)
	FoldChange   float64
	RealCount    int
	ControlCount int
}

// End is the exclusive end offset of the motif in the genome.
func (m Motif) End() int { return m.Start + m.Length }

// FoldChange is real / (control + Epsilon).
func FoldChange(realCount, controlCount int) float64 {
	return float64(realCount) / (float64(controlCount) + Epsilon)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
