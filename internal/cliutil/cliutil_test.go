package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("quiet", false, "")
	fs.String("gene", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--quiet", "g.fa", "--gene", "x.fa", "-", "--", "--odd"})
	if !reflect.DeepEqual(flagArgs, []string{"--quiet", "--gene", "x.fa"}) {
		t.Fatalf("flags = %v", flagArgs)
	}
	if !reflect.DeepEqual(posArgs, []string{"g.fa", "-", "--odd"}) {
		t.Fatalf("positionals = %v", posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-"})
	if err != nil || len(got) != 3 || got[2] != "-" {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.gb")}); err == nil {
		t.Fatal("expected an error for an empty glob")
	}
}

func TestResolveSingle(t *testing.T) {
	tests := []struct {
		flag    string
		pos     []string
		want    string
		wantErr bool
	}{
		{"g.fa", nil, "g.fa", false},
		{"", []string{"g.fa"}, "g.fa", false},
		{"", nil, "", false},
		{"a.fa", []string{"b.fa"}, "", true},
		{"", []string{"a.fa", "b.fa"}, "", true},
	}
	for _, tc := range tests {
		got, err := ResolveSingle("genome", tc.flag, tc.pos)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ResolveSingle(%q,%v) = %q,%v", tc.flag, tc.pos, got, err)
		}
	}
}
