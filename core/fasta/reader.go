// core/fasta/reader.go
package fasta

import (
	"context"
	"io"
)

// Sequence is the concatenation of every record of a FASTA input.
type Sequence struct {
	ID      string // ID of the first record
	Seq     []byte
	Records int
	Skipped int
}

// ReadSequence reads path ("-" for stdin, gzip allowed) and concatenates all
// of its records into one normalised sequence.
func ReadSequence(ctx context.Context, path string) (Sequence, error) {
	rc, err := Open(path)
	if err != nil {
		return Sequence{}, err
	}
	defer rc.Close()
	return ReadSequenceFrom(ctx, rc)
}

func ReadSequenceFrom(ctx context.Context, r io.Reader) (Sequence, error) {
	var out Sequence
	err := StreamRecords(ctx, r, func(rec Record) error {
		if out.Records == 0 {
			out.ID = rec.ID
		}
		out.Records++
		out.Seq = append(out.Seq, rec.Seq...)
		out.Skipped += rec.Skipped
		return nil
	})
	if err != nil {
		return Sequence{}, err
	}
	return out, nil
}
