// core/gene/gene.go
package gene

import "uspa-core/match"

// NotFound is the position reported for an absent or ambiguous gene.
const NotFound = -1

// DefaultMinIdentity is the identity a window needs to count as a hit.
const DefaultMinIdentity = 0.90

// Status classifies the outcome of a gene search.
type Status int

const (
	Absent Status = iota
	Unique
	Ambiguous
)

func (s Status) String() string {
	switch s {
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	default:
		return "absent"
	}
}

// Hit is the outcome of Locate.
//
// Pos is 1-indexed and is only meaningful when Status == Unique; otherwise it
// is NotFound. Positions lists the 1-indexed offsets that qualified before the
// scan stopped (at most two).
type Hit struct {
	Status    Status
	Pos       int
	Identity  float64
	Positions []int
}

// Found reports whether the gene was located exactly once.
func (h Hit) Found() bool { return h.Status == Unique }

// Locate slides gene across every offset of genome and keeps the windows whose
// positional identity is >= minIdentity.
//
// A second qualifying window makes the whole search ambiguous and stops the
// scan, even when the first hit was the better match.
func Locate(genome, gene []byte, minIdentity float64) Hit {
	n := len(gene)
	if n == 0 || len(genome) < n {
		return Hit{Status: Absent, Pos: NotFound}
	}

	var (
		first    = NotFound
		identity float64
		seen     []int
	)
	for i := 0; i <= len(genome)-n; i++ {
		id := match.Identity(genome[i:i+n], gene)
		if id < minIdentity {
			continue
		}
		seen = append(seen, i+1)
		if first == NotFound {
			first = i + 1
			identity = id
			continue
		}
		return Hit{Status: Ambiguous, Pos: NotFound, Positions: seen}
	}
	if first == NotFound {
		return Hit{Status: Absent, Pos: NotFound}
	}
	return Hit{Status: Unique, Pos: first, Identity: identity, Positions: seen}
}
