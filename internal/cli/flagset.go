// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"uspa/internal/clibase"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the grouped uspa help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "upstream promoter and motif analysis", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s -g genome.fa --gene gene.fa [options]\n  %s --gene gene.fa [options] genome.fa\n", name, name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -g, --genome file           Genome FASTA (or first positional; '-' for STDIN) [*]")
		fmt.Fprintln(out, "      --gene file             Gene FASTA used as the anchor [*]")
		fmt.Fprintln(out, "      --control file          Control FASTA (generated when absent)")
		fmt.Fprintf(out, "      --seed int              Seed for the generated control (0=time-based) [%s]\n", def("seed"))
		fmt.Fprintln(out, "      --control-out file      Save the generated control as FASTA")

		fmt.Fprintln(out, "\nGene:")
		fmt.Fprintf(out, "      --min-identity float    Minimum positional identity for a gene hit [%s]\n", def("min-identity"))

		fmt.Fprintln(out, "\nConsensus boxes:")
		fmt.Fprintf(out, "      --box-a string          Upstream (-35) box [%s]\n", def("box-a"))
		fmt.Fprintf(out, "      --box-b string          Downstream (-10) box [%s]\n", def("box-b"))
		fmt.Fprintf(out, "      --consensus-window int  Bases searched upstream of the gene (0=whole genome) [%s]\n", def("consensus-window"))
		fmt.Fprintf(out, "      --min-gap int           Minimum spacer between boxes [%s]\n", def("min-gap"))
		fmt.Fprintf(out, "      --max-gap int           Maximum spacer between boxes [%s]\n", def("max-gap"))

		fmt.Fprintln(out, "\nMotifs:")
		fmt.Fprintf(out, "      --motif-window int      Bases analysed upstream of the gene [%s]\n", def("motif-window"))
		fmt.Fprintf(out, "      --seed-length int       Seed (k-mer) length [%s]\n", def("seed-length"))
		fmt.Fprintf(out, "      --min-motif-length int  Shortest motif tested for enrichment [%s]\n", def("min-motif-length"))
		fmt.Fprintf(out, "      --min-hits int          Genome occurrences needed to seed or extend [%s]\n", def("min-hits"))
		fmt.Fprintf(out, "      --min-fold-change float Exclusive fold-change threshold [%s]\n", def("min-fold-change"))
		fmt.Fprintf(out, "      --motifs-out file       Headline motifs file ('-' disables) [%s]\n", def("motifs-out"))

		clibase.UsageOutput(out, def)
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
	})
	return fs
}
