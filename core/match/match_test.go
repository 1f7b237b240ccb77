// core/match/match_test.go
package match

import "testing"

func TestCountMatches(t *testing.T) {
	hay := []byte("ACGTACGTACGTACGT")

	tests := []struct {
		name    string
		pattern string
		want    int
	}{
		{name: "adjacent occurrences", pattern: "ACGT", want: 4},
		{name: "shorter pattern", pattern: "CGT", want: 4},
		{name: "straddles repeats", pattern: "TACG", want: 3},
		{name: "absent", pattern: "AAA", want: 0},
		{name: "whole haystack", pattern: "ACGTACGTACGTACGT", want: 1},
		{name: "longer than haystack", pattern: "ACGTACGTACGTACGTA", want: 0},
		{name: "empty pattern", pattern: "", want: 0},
	}
	for _, tc := range tests {
		if got := CountMatches([]byte(tc.pattern), hay, 0, 0); got != tc.want {
			t.Errorf("%s: CountMatches(%q) = %d, want %d", tc.name, tc.pattern, got, tc.want)
		}
	}
}

func TestCountMatchesOverlapping(t *testing.T) {
	if got := CountMatches([]byte("AA"), []byte("AAAAA"), 0, 0); got != 4 {
		t.Fatalf("overlapping AA in AAAAA: got %d, want 4", got)
	}
}

func TestCountMatchesExclusion(t *testing.T) {
	hay := []byte("ACGTACGTACGTACGT") // ACGT starts at 0,4,8,12

	tests := []struct {
		name           string
		exStart, exLen int
		want           int
	}{
		{name: "disabled", exStart: 5, exLen: 0, want: 4},
		{name: "exclude first", exStart: 0, exLen: 4, want: 3},
		{name: "exclusion end is open", exStart: 0, exLen: 4, want: 3},
		{name: "range covering two starts", exStart: 3, exLen: 6, want: 2},
		{name: "range between starts", exStart: 1, exLen: 3, want: 4},
		{name: "exclude everything", exStart: 0, exLen: 16, want: 0},
		{name: "range past the end", exStart: 12, exLen: 100, want: 3},
	}
	for _, tc := range tests {
		got := CountMatches([]byte("ACGT"), hay, tc.exStart, tc.exLen)
		if got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

// Every occurrence outside the exclusion range is counted and none inside it.
func TestCountMatchesExclusionAgainstPositions(t *testing.T) {
	hay := []byte("TTGACATTGACAGGTTGACATTTTGACATTGAC")
	pat := []byte("TGAC")
	all := positions(pat, hay)
	if len(all) == 0 {
		t.Fatal("fixture has no occurrences")
	}
	for s := 0; s < len(hay); s++ {
		for l := 0; l <= 8; l++ {
			want := 0
			for _, p := range all {
				if l == 0 || p < s || p >= s+l {
					want++
				}
			}
			if got := CountMatches(pat, hay, s, l); got != want {
				t.Fatalf("exclusion [%d,%d): got %d, want %d", s, s+l, got, want)
			}
		}
	}
}

func TestCountMatchesEmptyHaystack(t *testing.T) {
	if got := CountMatches([]byte("A"), nil, 0, 0); got != 0 {
		t.Fatalf("empty haystack: got %d", got)
	}
}

func TestPositionsHelper(t *testing.T) {
	got := positions([]byte("TACG"), []byte("ACGTACGTACGTACGT"))
	want := []int{3, 7, 11}
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions = %v, want %v", got, want)
		}
	}
}
