package jsonlutil

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type row struct {
	N int `json:"n"`
}

func never(error) bool { return false }

func TestStartWritesLines(t *testing.T) {
	var sb strings.Builder
	in, done := Start[row](&sb, 0, func(enc *json.Encoder, r row) error { return enc.Encode(r) }, never)
	for i := 1; i <= 3; i++ {
		in <- row{N: i}
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if sb.String() != "{\"n\":1}\n{\"n\":2}\n{\"n\":3}\n" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestStartDrainsAfterEncodeError(t *testing.T) {
	var sb strings.Builder
	boom := errors.New("boom")
	in, done := Start[row](&sb, 1, func(*json.Encoder, row) error { return boom }, never)
	for i := 0; i < 10; i++ {
		in <- row{N: i}
	}
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
