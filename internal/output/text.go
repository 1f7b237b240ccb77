// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"uspa/pkg/api"
)

// WriteReportText prints the "# "-prefixed summary that precedes the motif
// table in text mode.
func WriteReportText(w io.Writer, r api.ReportV1) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# genome\t%s\t%d bp\t%s\n", nameOf(r.Genome), r.Genome.Length, r.Genome.Digest)
	fmt.Fprintf(bw, "# control\t%s\t%d bp\t%s\n", nameOf(r.Control), r.Control.Length, r.Control.Digest)

	g := r.Gene
	switch g.Status {
	case "unique":
		fmt.Fprintf(bw, "# gene\tfound at %d\tidentity %.4f\n", g.Position, g.Identity)
	case "ambiguous":
		fmt.Fprintf(bw, "# gene\tambiguous\tpositions %s\n", IntsCSV(g.Positions))
	default:
		fmt.Fprintf(bw, "# gene\tnot found\n")
	}

	c := r.Consensus
	if c.Count > 0 {
		fmt.Fprintf(bw, "# consensus\t%s/%s\t%d pair(s)\tregion [%d,%d)\n", c.BoxA, c.BoxB, c.Count, c.RegionStart, c.RegionEnd)
	} else {
		fmt.Fprintf(bw, "# consensus\t%s/%s\tnot found\tregion [%d,%d)\n", c.BoxA, c.BoxB, c.RegionStart, c.RegionEnd)
	}
	for _, p := range c.Pairs {
		fmt.Fprintf(bw, "# box_pair\tbox A at %d: %s\tbox B at %d: %s\tgap %d\n", p.BoxAPos, p.BoxASite, p.BoxBPos, p.BoxBSite, p.Gap)
	}

	fmt.Fprintf(bw, "# window\t[%d,%d)\tseeds %d\tscreened %d\n", r.WindowStart, r.WindowEnd, r.Seeds, r.Screened)
	fmt.Fprintf(bw, "# motifs\t%d\n", len(r.Motifs))
	writeHeadline(bw, "best_fold_change", r.Headlines.BestFoldChange)
	writeHeadline(bw, "nearest_gene", r.Headlines.NearestGene)
	writeHeadline(bw, "longest", r.Headlines.Longest)
	return bw.Flush()
}

func writeHeadline(w io.Writer, tag string, m *api.MotifV1) {
	if m == nil {
		return
	}
	fmt.Fprintf(w, "# headline\t%s\t%s\n", tag, FormatMotifRowTSV(*m))
}

func nameOf(s api.SourceV1) string {
	switch {
	case s.Generated:
		return "generated"
	case s.ID != "":
		return s.ID
	}
	return s.Path
}

// StreamText writes the motif table as rows arrive on in.
func StreamText(w io.Writer, in <-chan api.MotifV1, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for m := range in {
		if _, err := fmt.Fprintln(bw, FormatMotifRowTSV(m)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteText writes the whole table from a slice.
func WriteText(w io.Writer, list []api.MotifV1, header bool) error {
	ch := make(chan api.MotifV1, len(list))
	for _, m := range list {
		ch <- m
	}
	close(ch)
	return StreamText(w, ch, header)
}
