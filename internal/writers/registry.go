// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"uspa/pkg/api"
)

// MotifStarter starts a streaming motif writer for one format.
type MotifStarter func(out io.Writer, header bool, bufSize int) (chan<- api.MotifV1, <-chan error)

// MotifWriters maps a format name to its streaming writer.
// Register in init() blocks from the per-format files.
var MotifWriters = map[string]MotifStarter{}

// RegisterMotif installs fn for format (last wins).
func RegisterMotif(format string, fn MotifStarter) { MotifWriters[format] = fn }

// StartMotifWriter dispatches on format. An unknown format yields a writer
// that drains its input and reports the error.
func StartMotifWriter(out io.Writer, format string, header bool, bufSize int) (chan<- api.MotifV1, <-chan error) {
	if fn, ok := MotifWriters[format]; ok {
		return fn(out, header, bufSize)
	}
	in := make(chan api.MotifV1, 1)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown motif format %q (no writer registered)", format)
	}()
	return in, errCh
}
