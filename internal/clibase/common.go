// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
)

// Output formats shared by the tools that print analysis results.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Common holds CLI fields shared by uspa and uspa-randseq.
type Common struct {
	// Output
	Output          string // text|json|jsonl
	Header          bool
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// RegisterMisc wires --quiet and --version, which every tool carries.
func RegisterMisc(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress status lines, warnings and the progress bar [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// Register wires the output and misc flags onto fs and returns a pointer to the
// "no-header" bool that AfterParse folds into Common.Header.
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.StringVar(&c.Output, "output", FormatText, "output: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", FormatText, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no motif is retained [1]")

	RegisterMisc(fs, c)
	return &noHeader
}

// AfterParse finalizes the header flag and runs shared validation.
func AfterParse(c *Common, noHeader *bool) error {
	c.Header = !*noHeader
	return Validate(c)
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	switch c.Output {
	case FormatText, FormatJSON, FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
