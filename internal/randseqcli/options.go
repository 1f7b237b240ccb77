// internal/randseqcli/options.go
package randseqcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"uspa-core/randseq"
	"uspa/internal/clibase"
	"uspa/internal/cliutil"
)

// Options holds the uspa-randseq flags.
type Options struct {
	clibase.Common

	Length int
	Like   string
	Seed   int64
	ID     string
	Out    string
	Width  int

	Weights randseq.Weights

	Examples bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "random control sequence generator", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --length 4641652 [options]\n", name)
		fmt.Fprintf(out, "  %s --like genome.fa [options]\n", name)

		fmt.Fprintln(out, "\nSequence:")
		fmt.Fprintln(out, "      --length int            Number of bases to generate")
		fmt.Fprintln(out, "      --like file             Take the length from a genome FASTA ('-' for STDIN)")
		fmt.Fprintf(out, "      --seed int              RNG seed (0=time-based) [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --weights A,T,C,G       Base probabilities, summing to 1 [%s]\n", def("weights"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --id string             FASTA record ID [%s]\n", def("id"))
		fmt.Fprintf(out, "      --out file              Output FASTA ('-' for STDOUT) [%s]\n", def("out"))
		fmt.Fprintf(out, "      --width int             Line width [%s]\n", def("width"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var weights string

	fs.IntVar(&opt.Length, "length", 0, "number of bases to generate")
	fs.StringVar(&opt.Like, "like", "", "take the length from a genome FASTA")
	fs.Int64Var(&opt.Seed, "seed", 0, "RNG seed (0=time-based)")
	fs.StringVar(&weights, "weights", randseq.DefaultWeights().String(), "base probabilities A,T,C,G")
	fs.StringVar(&opt.ID, "id", randseq.DefaultID, "FASTA record ID")
	fs.StringVar(&opt.Out, "out", "-", "output FASTA ('-' for STDOUT)")
	fs.IntVar(&opt.Width, "width", randseq.DefaultWidth, "line width")
	fs.BoolVar(&opt.Examples, "examples", false, "print usage examples and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")
	clibase.RegisterMisc(fs, &opt.Common)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if len(posArgs) > 0 {
		return opt, fmt.Errorf("unexpected argument %q", posArgs[0])
	}

	switch {
	case opt.Length == 0 && opt.Like == "":
		return opt, errors.New("one of --length or --like is required")
	case opt.Length != 0 && opt.Like != "":
		return opt, errors.New("--length and --like are mutually exclusive")
	case opt.Length < 0:
		return opt, errors.New("--length must be > 0")
	case opt.Width < 1:
		return opt, errors.New("--width must be >= 1")
	case opt.ID == "":
		return opt, errors.New("--id must not be empty")
	case opt.Out == "":
		return opt, errors.New("--out must name a file or '-'")
	}
	w, err := randseq.ParseWeights(weights)
	if err != nil {
		return opt, fmt.Errorf("--weights: %w", err)
	}
	opt.Weights = w
	return opt, nil
}

// PrintExamples writes the --examples quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintf(w, "  # a control as long as the genome, reproducible\n")
		fmt.Fprintf(w, "  %s --like genome.fna --seed 42 --out control.fna\n\n", name)
		fmt.Fprintf(w, "  # 10 kb to STDOUT\n")
		fmt.Fprintf(w, "  %s --length 10000\n", name)
	})
}
