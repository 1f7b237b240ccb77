// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry after normalisation.
//
// Seq holds only upper-case A/C/G/T. Skipped counts the sequence bytes that
// were dropped (ambiguity codes, gaps, digits); whitespace is not counted.
type Record struct {
	ID      string
	Seq     []byte
	Skipped int
}

// StreamRecords parses FASTA from r and emits one normalised Record per entry.
// Lines before the first header form a record with an empty ID, so headerless
// plain-sequence files are accepted.
//
// It is cancelable: ctx is checked between lines.
func StreamRecords(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id      string
		started bool
		seq     = make([]byte, 0, 1<<20)
		skipped int
	)

	flush := func() error {
		if !started && len(seq) == 0 {
			return nil
		}
		err := emit(Record{ID: id, Seq: append([]byte(nil), seq...), Skipped: skipped})
		seq, skipped = seq[:0], 0
		return err
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			started = true
			continue
		}
		var n int
		seq, n = appendNormalized(seq, bytes.TrimSpace(line))
		skipped += n
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// appendNormalized upper-cases line and appends its A/C/G/T bases to dst.
// It returns the grown slice and the number of non-blank bytes dropped.
func appendNormalized(dst, line []byte) ([]byte, int) {
	dropped := 0
	for _, c := range line {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case 'A', 'C', 'G', 'T':
			dst = append(dst, c)
		case ' ', '\t', '\r':
		default:
			dropped++
		}
	}
	return dst, dropped
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
