// internal/appcore/writer_factories.go
package appcore

import (
	"context"
	"io"

	"uspa/internal/output"
	"uspa/internal/writers"
	"uspa/pkg/api"
)

// WriterFactory starts a streaming sink for motif rows.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- api.MotifV1, <-chan error)
}

// MotifWriterFactory selects the motif table writer for a format.
type MotifWriterFactory struct {
	Format string
	Header bool
}

func NewMotifWriterFactory(format string, header bool) MotifWriterFactory {
	return MotifWriterFactory{Format: format, Header: header}
}

// Streams reports whether the format emits motifs row by row. JSON is one
// document and goes through output.WriteJSON instead.
func (w MotifWriterFactory) Streams() bool {
	return w.Format == output.FormatText || w.Format == output.FormatJSONL
}

func (w MotifWriterFactory) Start(out io.Writer, bufSize int) (chan<- api.MotifV1, <-chan error) {
	return writers.StartMotifWriter(out, w.Format, w.Header, bufSize)
}

// Emit streams motifs through a writer from wf. It stops feeding when ctx
// is canceled and always waits for the writer to finish.
func Emit(ctx context.Context, out io.Writer, motifs []api.MotifV1, wf WriterFactory) error {
	in, done := wf.Start(out, 64)
	var ferr error
feed:
	for _, m := range motifs {
		select {
		case in <- m:
		case <-ctx.Done():
			ferr = ctx.Err()
			break feed
		}
	}
	close(in)
	if werr := <-done; werr != nil {
		return werr
	}
	return ferr
}
