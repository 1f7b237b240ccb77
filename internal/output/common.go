// internal/output/common.go
package output

import "uspa/internal/clibase"

// TSVHeader is the canonical header row of the motif table.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "start\tlength\tfold_change\treal_count\tcontrol_count\tsequence"

// Output formats, re-exported for writers and apps.
const (
	FormatText  = clibase.FormatText
	FormatJSON  = clibase.FormatJSON
	FormatJSONL = clibase.FormatJSONL
)

// Titles of the blocks in the headline artifact, in file order.
const (
	TitleBestFoldChange = "Highest fold change"
	TitleNearestGene    = "Nearest to gene"
	TitleLongest        = "Longest"
)
