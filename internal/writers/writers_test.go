package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"uspa/internal/output"
	"uspa/pkg/api"
)

var rows = []api.MotifV1{
	{Sequence: "ACGTACGT", Start: 3, End: 11, Length: 8, FoldChange: 3, RealCount: 30, ControlCount: 10},
	{Sequence: "GGGGCCCC", Start: 9, End: 17, Length: 8, FoldChange: 2, RealCount: 20, ControlCount: 10},
}

func feed(in chan<- api.MotifV1) {
	for _, m := range rows {
		in <- m
	}
	close(in)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartMotifWriter(&buf, output.FormatText, true, 1)
	feed(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader || lines[1] != "3\t8\t3.00\t30\t10\tACGTACGT" {
		t.Fatalf("text output:\n%s", buf.String())
	}
}

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartMotifWriter(&buf, output.FormatJSONL, true, 1)
	feed(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	var m api.MotifV1
	if err := json.Unmarshal([]byte(lines[1]), &m); err != nil || m != rows[1] {
		t.Fatalf("line 2 = %+v (err=%v)", m, err)
	}
}

func TestUnknownFormatDrains(t *testing.T) {
	var b bytes.Buffer
	in, done := StartMotifWriter(&b, "nope-format", false, 1)
	feed(in) // must not block
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown motif format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestBrokenPipeSuppressed(t *testing.T) {
	for _, format := range []string{output.FormatText, output.FormatJSONL} {
		in, done := StartMotifWriter(errWriter{syscall.EPIPE}, format, true, 1)
		feed(in)
		if err := <-done; err != nil {
			t.Errorf("%s: broken pipe surfaced: %v", format, err)
		}
	}
}

func TestWriteErrorReported(t *testing.T) {
	in, done := StartMotifWriter(errWriter{errors.New("disk full")}, output.FormatText, true, 1)
	feed(in)
	if err := <-done; err == nil {
		t.Fatal("expected the write error")
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("pipe errors not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("false positive")
	}
}
