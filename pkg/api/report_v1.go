// pkg/api/report_v1.go
package api

// MotifV1 is the stable JSON/JSONL schema for one retained motif.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MotifV1 struct {
	Sequence     string  `json:"sequence"`
	Start        int     `json:"start"` // 0-based genome offset
	End          int     `json:"end"`   // exclusive
	Length       int     `json:"length"`
	FoldChange   float64 `json:"fold_change"`
	RealCount    int     `json:"real_count"`
	ControlCount int     `json:"control_count"`
}

// GeneV1 describes where the anchoring gene was found.
type GeneV1 struct {
	Status    string  `json:"status"`        // "unique" | "ambiguous" | "absent"
	Position  int     `json:"position"`      // 1-based, -1 when not unique
	Identity  float64 `json:"identity,omitempty"`
	Positions []int   `json:"positions,omitempty"`
	Length    int     `json:"length"`
}

// BoxPairV1 is one qualifying consensus box pair.
type BoxPairV1 struct {
	BoxAPos  int    `json:"box_a_pos"` // 0-based
	BoxBPos  int    `json:"box_b_pos"`
	Gap      int    `json:"gap"`
	BoxASite string `json:"box_a_site"`
	BoxBSite string `json:"box_b_site"`
	BoxAMM   int    `json:"box_a_mm,omitempty"`
	BoxBMM   int    `json:"box_b_mm,omitempty"`
}

// ConsensusV1 summarizes the box-pair search upstream of the gene.
type ConsensusV1 struct {
	BoxA        string      `json:"box_a"`
	BoxB        string      `json:"box_b"`
	RegionStart int         `json:"region_start"`
	RegionEnd   int         `json:"region_end"`
	Count       int         `json:"count"` // -1 when no pair qualified
	Pairs       []BoxPairV1 `json:"pairs,omitempty"`
}

// HeadlinesV1 holds the three headline motifs; nil fields mean none retained.
type HeadlinesV1 struct {
	BestFoldChange *MotifV1 `json:"best_fold_change,omitempty"`
	NearestGene    *MotifV1 `json:"nearest_gene,omitempty"`
	Longest        *MotifV1 `json:"longest,omitempty"`
}

// SourceV1 identifies an input sequence.
type SourceV1 struct {
	Path      string `json:"path"`
	ID        string `json:"id,omitempty"`
	Length    int    `json:"length"`
	Digest    string `json:"digest"` // wyhash, 16 hex digits
	Generated bool   `json:"generated,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
}

// ConfigV1 echoes the thresholds used for the motif scan.
type ConfigV1 struct {
	SeedLength     int     `json:"seed_length"`
	MinMotifLength int     `json:"min_motif_length"`
	MinHits        int     `json:"min_hits"`
	MinFoldChange  float64 `json:"min_fold_change"`
	MotifWindow    int     `json:"motif_window"`
	MinIdentity    float64 `json:"min_identity"`
}

// ReportV1 is the single document emitted with --output json.
type ReportV1 struct {
	Version     string      `json:"version"`
	Genome      SourceV1    `json:"genome"`
	Control     SourceV1    `json:"control"`
	Gene        GeneV1      `json:"gene"`
	Consensus   ConsensusV1 `json:"consensus"`
	Config      ConfigV1    `json:"config"`
	WindowStart int         `json:"window_start"`
	WindowEnd   int         `json:"window_end"`
	Seeds       int         `json:"seeds"`
	Screened    int         `json:"screened"`
	Motifs      []MotifV1   `json:"motifs"`
	Headlines   HeadlinesV1 `json:"headlines"`
}
