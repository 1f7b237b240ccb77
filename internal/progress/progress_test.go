package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisabledIsNil(t *testing.T) {
	var buf bytes.Buffer
	for _, b := range []*Bar{
		New(&buf, "seeds", 10, false),
		New(&buf, "seeds", 0, true),
		New(nil, "seeds", 10, true),
	} {
		if b != nil {
			t.Fatalf("expected a nil bar, got %+v", b)
		}
		b.Update(1, 10)
		b.Finish(true)
	}
	if buf.Len() != 0 {
		t.Fatalf("disabled bar wrote %q", buf.String())
	}
}

func TestCompletes(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, "seeds", 5, true)
	for i := 1; i <= 5; i++ {
		b.Update(i, 5)
	}
	b.Finish(true)
	if !strings.Contains(buf.String(), "seeds") {
		t.Fatalf("bar output = %q", buf.String())
	}
}

func TestAbortReturns(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, "seeds", 100, true)
	b.Update(3, 100)
	b.Finish(false)
}
