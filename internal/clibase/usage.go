// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"uspa/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, inputs, parameters).
func UsageCommon(fs *flag.FlagSet, name, title string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, title)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress status lines, warnings and progress [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// UsageOutput prints the shared output block for tools registered with Register.
func UsageOutput(out io.Writer, def func(string) string) {
	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
	fmt.Fprintf(out, "      --no-header             Suppress the TSV header line [%s]\n", def("no-header"))
	fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no motif is retained [%s]\n", def("no-match-exit-code"))
}
