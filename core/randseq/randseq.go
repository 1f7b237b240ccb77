// core/randseq/randseq.go
package randseq

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Weights are per-base probabilities. They are sampled cumulatively in the
// order A, T, C, G.
type Weights struct {
	A, T, C, G float64
}

// DefaultWeights is the composition of the control sequences.
func DefaultWeights() Weights {
	return Weights{A: 0.246, T: 0.244, C: 0.255, G: 0.255}
}

func (w Weights) Validate() error {
	if w.A < 0 || w.T < 0 || w.C < 0 || w.G < 0 {
		return errors.New("randseq: weights must be >= 0")
	}
	if math.Abs(w.A+w.T+w.C+w.G-1) > 1e-9 {
		return errors.New("randseq: weights must sum to 1")
	}
	return nil
}

// ParseWeights reads "A,T,C,G" probabilities, e.g. "0.25,0.25,0.25,0.25",
// and validates them.
func ParseWeights(s string) (Weights, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Weights{}, fmt.Errorf("randseq: weights %q: want 4 comma-separated values (A,T,C,G)", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Weights{}, fmt.Errorf("randseq: weights %q: %w", s, err)
		}
		v[i] = f
	}
	w := Weights{A: v[0], T: v[1], C: v[2], G: v[3]}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

func (w Weights) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", w.A, w.T, w.C, w.G)
}

// Make returns an upper-case sequence of the given length drawn from
// DefaultWeights. seed == 0 uses a time-based seed; any other seed is
// reproducible.
func Make(length int, seed int64) []byte {
	return MakeWeighted(length, DefaultWeights(), seed)
}

// MakeWeighted is Make with explicit weights.
func MakeWeighted(length int, w Weights, seed int64) []byte {
	if length <= 0 {
		return []byte{}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	a := w.A
	at := a + w.T
	atc := at + w.C

	seq := make([]byte, length)
	for i := range seq {
		x := r.Float64()
		switch {
		case x < a:
			seq[i] = 'A'
		case x < at:
			seq[i] = 'T'
		case x < atc:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return seq
}
