// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"uspa/pkg/api"
)

// WriteHeadlines writes the three headline motifs as tagged blocks:
// a ">Title" line, the sequence, then a blank line. Nothing is written when
// no motif was retained.
func WriteHeadlines(w io.Writer, h api.HeadlinesV1) error {
	blocks := []struct {
		title string
		m     *api.MotifV1
	}{
		{TitleBestFoldChange, h.BestFoldChange},
		{TitleNearestGene, h.NearestGene},
		{TitleLongest, h.Longest},
	}
	for _, b := range blocks {
		if b.m == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n\n", b.title, b.m.Sequence); err != nil {
			return err
		}
	}
	return nil
}
