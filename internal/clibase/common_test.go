package clibase

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"
)

func parse(t *testing.T, args ...string) (Common, error) {
	t.Helper()
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	var c Common
	nh := Register(fs, &c)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return c, AfterParse(&c, nh)
}

func TestCommonDefaults(t *testing.T) {
	c, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != FormatText || !c.Header || c.NoMatchExitCode != 1 || c.Quiet {
		t.Fatalf("defaults: %+v", c)
	}
}

func TestCommonAliases(t *testing.T) {
	c, err := parse(t, "-o", "jsonl", "-q", "--no-header")
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != FormatJSONL || !c.Quiet || c.Header {
		t.Fatalf("aliases: %+v", c)
	}
}

func TestCommonValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad output", []string{"--output", "fasta"}},
		{"exit code too large", []string{"--no-match-exit-code", "256"}},
		{"negative exit code", []string{"--no-match-exit-code", "-1"}},
	}
	for _, tc := range tests {
		if _, err := parse(t, tc.args...); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestUsageCommon(t *testing.T) {
	fs := flag.NewFlagSet("tool", flag.ContinueOnError)
	var c Common
	Register(fs, &c)
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	UsageCommon(fs, "tool", "does things", func(out io.Writer, def func(string) string) {
		UsageOutput(out, def)
	})
	fs.Usage()
	s := buf.String()
	for _, want := range []string{"tool – does things", "Output:", "--no-match-exit-code int  Exit code when no motif is retained [1]", "Miscellaneous:"} {
		if !strings.Contains(s, want) {
			t.Errorf("usage missing %q:\n%s", want, s)
		}
	}
}

func TestPrintExamples(t *testing.T) {
	var buf bytes.Buffer
	PrintExamples(&buf, "tool", func(w io.Writer) { _, _ = w.Write([]byte("  tool -g x.fa\n")) })
	if !strings.HasPrefix(buf.String(), "tool quickstart") || !strings.Contains(buf.String(), "--help") {
		t.Fatalf("got %q", buf.String())
	}
}
