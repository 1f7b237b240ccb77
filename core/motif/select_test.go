package motif

import "testing"

func TestSelectEmpty(t *testing.T) {
	if h := Select(nil, 100); h.Found {
		t.Fatalf("Select(nil) = %+v", h)
	}
}

func TestSelect(t *testing.T) {
	motifs := []Motif{
		{Seq: "A", Start: 10, Length: 18, FoldChange: 2.0},
		{Seq: "B", Start: 90, Length: 20, FoldChange: 5.0},
		{Seq: "C", Start: 95, Length: 19, FoldChange: 3.0},
		{Seq: "D", Start: 40, Length: 20, FoldChange: 5.0},
	}
	h := Select(motifs, 100)
	if !h.Found {
		t.Fatal("expected headlines")
	}
	if h.BestFoldChange.Seq != "B" {
		t.Errorf("best fold change = %s, want B (first of the tie)", h.BestFoldChange.Seq)
	}
	if h.NearestGene.Seq != "C" {
		t.Errorf("nearest = %s, want C", h.NearestGene.Seq)
	}
	if h.Longest.Seq != "B" {
		t.Errorf("longest = %s, want B (first of the tie)", h.Longest.Seq)
	}
}

func TestSelectDistanceTieKeepsFirst(t *testing.T) {
	motifs := []Motif{
		{Seq: "after", Start: 110, Length: 18},
		{Seq: "before", Start: 90, Length: 18},
	}
	if h := Select(motifs, 100); h.NearestGene.Seq != "after" {
		t.Fatalf("nearest = %s, want the first seen", h.NearestGene.Seq)
	}
}

func TestSelectSingle(t *testing.T) {
	m := Motif{Seq: "ACGT", Start: 3, Length: 4, FoldChange: 9}
	h := Select([]Motif{m}, 0)
	if h.BestFoldChange != m || h.NearestGene != m || h.Longest != m {
		t.Fatalf("headlines = %+v", h)
	}
}
