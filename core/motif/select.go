// core/motif/select.go
package motif

// Headlines are the three motifs singled out for reporting.
type Headlines struct {
	Found          bool
	BestFoldChange Motif
	NearestGene    Motif
	Longest        Motif
}

// Select picks, in one pass over motifs, the highest fold change, the start
// closest to anchor and the greatest length. Comparisons are strict, so the
// earliest motif wins a tie. Found is false for an empty slice.
func Select(motifs []Motif, anchor int) Headlines {
	if len(motifs) == 0 {
		return Headlines{}
	}
	best, near, long := 0, 0, 0
	for i := 1; i < len(motifs); i++ {
		m := motifs[i]
		if m.FoldChange > motifs[best].FoldChange {
			best = i
		}
		if absInt(m.Start-anchor) < absInt(motifs[near].Start-anchor) {
			near = i
		}
		if m.Length > motifs[long].Length {
			long = i
		}
	}
	return Headlines{
		Found:          true,
		BestFoldChange: motifs[best],
		NearestGene:    motifs[near],
		Longest:        motifs[long],
	}
}
