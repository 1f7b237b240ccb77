// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"uspa-core/motif"
	"uspa/pkg/api"
)

// ToAPIMotif converts a domain Motif to the stable wire schema (v1).
func ToAPIMotif(m motif.Motif) api.MotifV1 {
	return api.MotifV1{
		Sequence:     m.Seq,
		Start:        m.Start,
		End:          m.End(),
		Length:       m.Length,
		FoldChange:   m.FoldChange,
		RealCount:    m.RealCount,
		ControlCount: m.ControlCount,
	}
}

// ToAPIMotifs converts a slice; the result is never nil so JSON shows [].
func ToAPIMotifs(list []motif.Motif) []api.MotifV1 {
	out := make([]api.MotifV1, 0, len(list))
	for _, m := range list {
		out = append(out, ToAPIMotif(m))
	}
	return out
}

// ToAPIHeadlines converts the headline selection; all fields stay nil when
// nothing was retained.
func ToAPIHeadlines(h motif.Headlines) api.HeadlinesV1 {
	if !h.Found {
		return api.HeadlinesV1{}
	}
	best, near, long := ToAPIMotif(h.BestFoldChange), ToAPIMotif(h.NearestGene), ToAPIMotif(h.Longest)
	return api.HeadlinesV1{BestFoldChange: &best, NearestGene: &near, Longest: &long}
}

// WriteJSON writes the report as one pretty-indented JSON document.
func WriteJSON(w io.Writer, r api.ReportV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
