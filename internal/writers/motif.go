// internal/writers/motif.go
package writers

import (
	"io"

	"uspa/internal/output"
	"uspa/pkg/api"
)

func init() {
	RegisterMotif(output.FormatText, StartMotifTextWriter)
	RegisterMotif(output.FormatJSONL, func(out io.Writer, _ bool, bufSize int) (chan<- api.MotifV1, <-chan error) {
		return StartMotifJSONLWriter(out, bufSize)
	})
}

// StartMotifTextWriter spins up a writer goroutine producing the TSV motif table.
func StartMotifTextWriter(out io.Writer, header bool, bufSize int) (chan<- api.MotifV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.MotifV1, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := output.StreamText(out, in, header)
		if err != nil {
			// keep the producer from blocking on a dead writer
			for range in {
			}
			if IsBrokenPipe(err) {
				err = nil
			}
		}
		errCh <- err
	}()

	return in, errCh
}
