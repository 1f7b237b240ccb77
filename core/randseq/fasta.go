// core/randseq/fasta.go
package randseq

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

const (
	DefaultID    = "random_control"
	DefaultWidth = 80
)

// WriteFASTA writes seq as a single FASTA record wrapped at width columns.
// width <= 0 uses DefaultWidth.
func WriteFASTA(w io.Writer, id, desc string, seq []byte, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if id == "" {
		id = DefaultID
	}
	s := linear.NewSeq(id, alphabet.BytesToLetters(seq), alphabet.DNA)
	s.Desc = desc
	_, err := fasta.NewWriter(w, width).Write(s)
	return err
}
