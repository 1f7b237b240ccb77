package report

import (
	"testing"

	"uspa-core/gene"
	"uspa-core/motif"
	"uspa-core/promoter"
)

func TestDigest(t *testing.T) {
	a := Digest([]byte("ACGTACGT"))
	if len(a) != 16 {
		t.Fatalf("digest %q is not 16 hex digits", a)
	}
	if a != Digest([]byte("ACGTACGT")) {
		t.Fatal("digest is not deterministic")
	}
	if a == Digest([]byte("ACGTACGA")) {
		t.Fatal("distinct sequences share a digest")
	}
}

func TestBuild(t *testing.T) {
	genome := []byte("TTGACAGGGGGGGGGGGGGGGTATAATCCCCATGAAA")
	m := motif.Motif{Seq: "GGGG", Start: 6, Length: 4, FoldChange: 3, RealCount: 3, ControlCount: 1}
	a := Analysis{
		Genome:      Input{Path: "g.fa", ID: "chr1", Seq: genome},
		Control:     Input{Seq: []byte("ACGT"), Generated: true, Seed: 9},
		GeneLength:  6,
		Gene:        gene.Hit{Status: gene.Unique, Pos: 32, Identity: 1, Positions: []int{32}},
		MinIdentity: 0.9,
		Promoter:    promoter.DefaultConfig(),
		Consensus: promoter.Result{
			Pairs: []promoter.Pair{{BoxAPos: 0, BoxBPos: 21, Gap: 15, BoxASite: "TTGACA", BoxBSite: "TATAAT"}},
			Count: 1, RegionStart: 0, RegionEnd: 31,
		},
		Motif: motif.DefaultConfig(),
		Scan: motif.Result{
			Motifs:      []motif.Motif{m},
			Headlines:   motif.Select([]motif.Motif{m}, 31),
			WindowStart: 0, WindowEnd: 31, Seeds: 26, Screened: 1,
		},
	}
	r := Build(a)

	if r.Genome.Length != len(genome) || r.Genome.Digest != Digest(genome) || r.Genome.ID != "chr1" {
		t.Errorf("genome source %+v", r.Genome)
	}
	if !r.Control.Generated || r.Control.Seed != 9 || r.Control.Length != 4 {
		t.Errorf("control source %+v", r.Control)
	}
	if r.Gene.Status != "unique" || r.Gene.Position != 32 || r.Gene.Positions != nil || r.Gene.Length != 6 {
		t.Errorf("gene %+v", r.Gene)
	}
	if r.Consensus.Count != 1 || len(r.Consensus.Pairs) != 1 || r.Consensus.Pairs[0].BoxBPos != 21 || r.Consensus.BoxA != "TTGACA" {
		t.Errorf("consensus %+v", r.Consensus)
	}
	if r.Config.SeedLength != 6 || r.Config.MinIdentity != 0.9 {
		t.Errorf("config %+v", r.Config)
	}
	if len(r.Motifs) != 1 || r.Motifs[0].End != 10 || r.Headlines.Longest == nil {
		t.Errorf("motifs %+v headlines %+v", r.Motifs, r.Headlines)
	}
}

func TestBuildNotFound(t *testing.T) {
	r := Build(Analysis{
		Gene:      gene.Hit{Status: gene.Ambiguous, Pos: gene.NotFound, Positions: []int{1, 11}},
		Promoter:  promoter.DefaultConfig(),
		Consensus: promoter.Result{RegionEnd: 10},
	})
	if r.Gene.Status != "ambiguous" || r.Gene.Position != -1 || len(r.Gene.Positions) != 2 || r.Gene.Identity != 0 {
		t.Errorf("gene %+v", r.Gene)
	}
	if r.Consensus.Count != promoter.NotFound || r.Consensus.Pairs != nil {
		t.Errorf("consensus %+v", r.Consensus)
	}
	if r.Motifs == nil || len(r.Motifs) != 0 || r.Headlines.BestFoldChange != nil {
		t.Errorf("motifs %+v headlines %+v", r.Motifs, r.Headlines)
	}
}
