// core/motif/config.go
package motif

import (
	"errors"
	"fmt"
)

var (
	// ErrBadConfig wraps every Config validation failure.
	ErrBadConfig = errors.New("motif: invalid configuration")

	// ErrWindowOutOfRange is returned when the analysis window would start
	// before the genome or end after it.
	ErrWindowOutOfRange = errors.New("motif: upstream window exceeds genome bounds")
)

const (
	DefaultSeedLen       = 6
	DefaultMinMotifLen   = 18
	DefaultMinHits       = 20
	DefaultFoldChangeMin = 1.5
	DefaultWindow        = 1000
)

// Config holds the thresholds of one scan.
type Config struct {
	SeedLen       int     // k, length of the seeds cut from the window
	MinMotifLen   int     // shortest motif that reaches the fold-change test
	MinHits       int     // occurrences needed to seed or extend
	FoldChangeMin float64 // exclusive lower bound for retention
	Window        int     // bases analysed upstream of the anchor
}

func DefaultConfig() Config {
	return Config{
		SeedLen:       DefaultSeedLen,
		MinMotifLen:   DefaultMinMotifLen,
		MinHits:       DefaultMinHits,
		FoldChangeMin: DefaultFoldChangeMin,
		Window:        DefaultWindow,
	}
}

func (c Config) Validate() error {
	switch {
	case c.SeedLen < 1:
		return fmt.Errorf("%w: seed length must be >= 1 (got %d)", ErrBadConfig, c.SeedLen)
	case c.Window < c.SeedLen:
		return fmt.Errorf("%w: window (%d) must be >= seed length (%d)", ErrBadConfig, c.Window, c.SeedLen)
	case c.MinHits < 1:
		return fmt.Errorf("%w: min hits must be >= 1 (got %d)", ErrBadConfig, c.MinHits)
	case c.MinMotifLen < 0:
		return fmt.Errorf("%w: min motif length must be >= 0 (got %d)", ErrBadConfig, c.MinMotifLen)
	case c.FoldChangeMin < 0:
		return fmt.Errorf("%w: fold-change minimum must be >= 0 (got %g)", ErrBadConfig, c.FoldChangeMin)
	}
	return nil
}

// CheckWindow reports whether the window [anchor-Window, anchor) lies inside
// a genome of genomeLen bases.
func (c Config) CheckWindow(anchor, genomeLen int) error {
	start := anchor - c.Window
	if start < 0 || anchor > genomeLen {
		return fmt.Errorf("%w: window [%d,%d) over genome of length %d",
			ErrWindowOutOfRange, start, anchor, genomeLen)
	}
	return nil
}
