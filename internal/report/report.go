// internal/report/report.go
package report

import (
	"fmt"

	"github.com/zeebo/wyhash"

	"uspa-core/gene"
	"uspa-core/motif"
	"uspa-core/promoter"
	"uspa/internal/output"
	"uspa/internal/version"
	"uspa/pkg/api"
)

// DigestSeed keys the sequence digests; changing it changes every report.
const DigestSeed uint64 = 0x75737061

// Digest fingerprints a sequence as 16 lowercase hex digits.
func Digest(seq []byte) string {
	return fmt.Sprintf("%016x", wyhash.Hash(seq, DigestSeed))
}

// Input is one sequence fed to the analysis.
type Input struct {
	Path      string
	ID        string
	Seq       []byte
	Generated bool
	Seed      int64
}

// Source describes in for the report.
func Source(in Input) api.SourceV1 {
	return api.SourceV1{
		Path:      in.Path,
		ID:        in.ID,
		Length:    len(in.Seq),
		Digest:    Digest(in.Seq),
		Generated: in.Generated,
		Seed:      in.Seed,
	}
}

// Analysis gathers the results of one run.
type Analysis struct {
	Genome      Input
	Control     Input
	GeneLength  int
	Gene        gene.Hit
	MinIdentity float64
	Promoter    promoter.Config
	Consensus   promoter.Result
	Motif       motif.Config
	Scan        motif.Result
}

// Build converts a finished analysis into the v1 report.
func Build(a Analysis) api.ReportV1 {
	return api.ReportV1{
		Version:     version.Version,
		Genome:      Source(a.Genome),
		Control:     Source(a.Control),
		Gene:        geneV1(a.Gene, a.GeneLength),
		Consensus:   consensusV1(a.Promoter, a.Consensus),
		Config:      configV1(a.Motif, a.MinIdentity),
		WindowStart: a.Scan.WindowStart,
		WindowEnd:   a.Scan.WindowEnd,
		Seeds:       a.Scan.Seeds,
		Screened:    a.Scan.Screened,
		Motifs:      output.ToAPIMotifs(a.Scan.Motifs),
		Headlines:   output.ToAPIHeadlines(a.Scan.Headlines),
	}
}

func geneV1(h gene.Hit, length int) api.GeneV1 {
	v := api.GeneV1{
		Status:   h.Status.String(),
		Position: h.Pos,
		Length:   length,
	}
	if h.Status == gene.Unique {
		v.Identity = h.Identity
	}
	if h.Status == gene.Ambiguous {
		v.Positions = append([]int(nil), h.Positions...)
	}
	return v
}

func consensusV1(cfg promoter.Config, r promoter.Result) api.ConsensusV1 {
	v := api.ConsensusV1{
		BoxA:        cfg.BoxA,
		BoxB:        cfg.BoxB,
		RegionStart: r.RegionStart,
		RegionEnd:   r.RegionEnd,
		Count:       r.Reported(),
	}
	for _, p := range r.Pairs {
		v.Pairs = append(v.Pairs, api.BoxPairV1{
			BoxAPos:  p.BoxAPos,
			BoxBPos:  p.BoxBPos,
			Gap:      p.Gap,
			BoxASite: p.BoxASite,
			BoxBSite: p.BoxBSite,
			BoxAMM:   p.BoxAMM,
			BoxBMM:   p.BoxBMM,
		})
	}
	return v
}

func configV1(c motif.Config, minIdentity float64) api.ConfigV1 {
	return api.ConfigV1{
		SeedLength:     c.SeedLen,
		MinMotifLength: c.MinMotifLen,
		MinHits:        c.MinHits,
		MinFoldChange:  c.FoldChangeMin,
		MotifWindow:    c.Window,
		MinIdentity:    minIdentity,
	}
}
