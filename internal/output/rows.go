// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"uspa/pkg/api"
)

func IntsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

// FormatFold renders a fold change with two decimals.
func FormatFold(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

// FormatMotifRowTSV returns the motif table columns (no trailing newline).
func FormatMotifRowTSV(m api.MotifV1) string {
	return fmt.Sprintf("%d\t%d\t%s\t%d\t%d\t%s",
		m.Start, m.Length, FormatFold(m.FoldChange),
		m.RealCount, m.ControlCount, m.Sequence,
	)
}
