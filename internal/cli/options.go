// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"uspa-core/gene"
	"uspa-core/motif"
	"uspa-core/oligo"
	"uspa-core/promoter"
	"uspa/internal/clibase"
	"uspa/internal/cliutil"
)

// DefaultMotifsOut is the headline artifact written next to the run.
const DefaultMotifsOut = "motif_retenu.txt"

// Options holds all uspa flags and arguments.
type Options struct {
	clibase.Common

	// Input
	Genome     string
	Gene       string
	Control    string
	Seed       int64
	ControlOut string

	// Gene
	MinIdentity float64

	// Consensus boxes
	BoxA            string
	BoxB            string
	ConsensusWindow int
	MinGap          int
	MaxGap          int

	// Motifs
	MotifWindow    int
	SeedLength     int
	MinMotifLength int
	MinHits        int
	MinFoldChange  float64
	MotifsOut      string

	Examples bool
}

// MotifConfig returns the engine configuration selected on the command line.
func (o Options) MotifConfig() motif.Config {
	return motif.Config{
		SeedLen:       o.SeedLength,
		MinMotifLen:   o.MinMotifLength,
		MinHits:       o.MinHits,
		FoldChangeMin: o.MinFoldChange,
		Window:        o.MotifWindow,
	}
}

// PromoterConfig returns the box-pair configuration selected on the command line.
func (o Options) PromoterConfig() promoter.Config {
	return promoter.Config{BoxA: o.BoxA, BoxB: o.BoxB, MinGap: o.MinGap, MaxGap: o.MaxGap}
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and positionals may be interleaved; the single positional is the genome.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	mc := motif.DefaultConfig()
	pc := promoter.DefaultConfig()

	// Input
	fs.StringVar(&opt.Genome, "genome", "", "genome FASTA [*]")
	fs.StringVar(&opt.Genome, "g", "", "alias of --genome")
	fs.StringVar(&opt.Gene, "gene", "", "gene FASTA [*]")
	fs.StringVar(&opt.Control, "control", "", "control FASTA (generated when absent)")
	fs.Int64Var(&opt.Seed, "seed", 0, "seed for the generated control (0=time-based) [0]")
	fs.StringVar(&opt.ControlOut, "control-out", "", "save the generated control as FASTA")

	// Gene
	fs.Float64Var(&opt.MinIdentity, "min-identity", gene.DefaultMinIdentity, "minimum identity for a gene hit")

	// Consensus
	fs.StringVar(&opt.BoxA, "box-a", pc.BoxA, "upstream consensus box")
	fs.StringVar(&opt.BoxB, "box-b", pc.BoxB, "downstream consensus box")
	fs.IntVar(&opt.ConsensusWindow, "consensus-window", promoter.DefaultUpstream, "bases searched upstream of the gene (0=whole genome)")
	fs.IntVar(&opt.MinGap, "min-gap", pc.MinGap, "minimum spacer between boxes")
	fs.IntVar(&opt.MaxGap, "max-gap", pc.MaxGap, "maximum spacer between boxes")

	// Motifs
	fs.IntVar(&opt.MotifWindow, "motif-window", mc.Window, "bases analysed upstream of the gene")
	fs.IntVar(&opt.SeedLength, "seed-length", mc.SeedLen, "seed length")
	fs.IntVar(&opt.MinMotifLength, "min-motif-length", mc.MinMotifLen, "shortest motif tested for enrichment")
	fs.IntVar(&opt.MinHits, "min-hits", mc.MinHits, "occurrences needed to seed or extend")
	fs.Float64Var(&opt.MinFoldChange, "min-fold-change", mc.FoldChangeMin, "exclusive fold-change threshold")
	fs.StringVar(&opt.MotifsOut, "motifs-out", DefaultMotifsOut, "headline motifs file ('-' disables)")

	noHeader := clibase.Register(fs, &opt.Common)
	fs.BoolVar(&opt.Examples, "examples", false, "print usage examples and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")

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

	genome, err := cliutil.ResolveSingle("genome", opt.Genome, posArgs)
	if err != nil {
		return opt, err
	}
	opt.Genome = genome
	if err := clibase.AfterParse(&opt.Common, noHeader); err != nil {
		return opt, err
	}
	return opt, validate(&opt)
}

func validate(o *Options) error {
	for _, box := range []struct {
		flag string
		v    *string
	}{{"--box-a", &o.BoxA}, {"--box-b", &o.BoxB}} {
		s, err := oligo.Validate(*box.v)
		if err != nil {
			return fmt.Errorf("%s: %w", box.flag, err)
		}
		*box.v = s
	}

	switch {
	case o.Genome == "":
		return errors.New("a genome is required (--genome or positional)")
	case o.Gene == "":
		return errors.New("--gene is required")
	case stdinInputs(o.Genome, o.Gene, o.Control) > 1:
		return errors.New("only one input may be read from STDIN")
	case o.Control != "" && o.ControlOut != "":
		return errors.New("--control-out only applies to a generated control")
	case o.ControlOut == "-":
		return errors.New("--control-out must name a file (STDOUT carries the report)")
	case o.MinIdentity <= 0 || o.MinIdentity > 1:
		return errors.New("--min-identity must be in (0, 1]")
	case o.ConsensusWindow < 0:
		return errors.New("--consensus-window must be >= 0")
	case o.MotifsOut == "":
		return errors.New("--motifs-out must name a file or '-'")
	}
	if err := o.PromoterConfig().Validate(); err != nil {
		return err
	}
	if err := o.MotifConfig().Validate(); err != nil {
		return err
	}
	return nil
}

func stdinInputs(paths ...string) int {
	n := 0
	for _, p := range paths {
		if p == "-" {
			n++
		}
	}
	return n
}

// PrintExamples writes the --examples quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintf(w, "  # analyse the 1 kb upstream of a gene against a generated control\n")
		fmt.Fprintf(w, "  %s -g genome.fna --gene gene.fna --seed 42\n\n", name)
		fmt.Fprintf(w, "  # reuse a saved control and emit JSON\n")
		fmt.Fprintf(w, "  %s -g genome.fna --gene gene.fna --control control.fna -o json\n\n", name)
		fmt.Fprintf(w, "  # relax the motif thresholds for a small genome\n")
		fmt.Fprintf(w, "  %s --gene gene.fna --motif-window 300 --min-hits 5 --min-motif-length 10 genome.fna\n", name)
	})
}
