// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"uspa-core/fasta"
	"uspa-core/gene"
	"uspa-core/motif"
	"uspa-core/promoter"
	"uspa-core/randseq"
	"uspa/internal/appcore"
	"uspa/internal/cli"
	"uspa/internal/clibase"
	"uspa/internal/cmdutil"
	"uspa/internal/output"
	"uspa/internal/progress"
	"uspa/internal/report"
	"uspa/internal/version"
	"uspa/pkg/api"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("uspa")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.Flush(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, "uspa")
			return appcore.Flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "uspa version %s\n", version.Version)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	code := run(parent, opts, outw, stderr)
	return appcore.Flush(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// run executes gene location, the consensus search and the motif scan, then
// writes the report. It returns the exit code.
func run(ctx context.Context, opts cli.Options, outw io.Writer, stderr io.Writer) int {
	genome, err := readInput(ctx, stderr, opts.Quiet, "genome", opts.Genome)
	if err != nil {
		return appcore.Fail(stderr, err)
	}
	geneSeq, err := readInput(ctx, stderr, opts.Quiet, "gene", opts.Gene)
	if err != nil {
		return appcore.Fail(stderr, err)
	}

	// Gene
	hit := gene.Locate(genome.Seq, geneSeq.Seq, opts.MinIdentity)
	switch hit.Status {
	case gene.Absent:
		return appcore.Fail(stderr, appcore.Usagef("gene %s not found in %s at identity >= %.2f",
			opts.Gene, opts.Genome, opts.MinIdentity))
	case gene.Ambiguous:
		return appcore.Fail(stderr, appcore.Usagef("gene %s matches %s at several positions (%s); refusing to pick one",
			opts.Gene, opts.Genome, output.IntsCSV(hit.Positions)))
	}
	cmdutil.Infof(stderr, opts.Quiet, "gene found at %s (identity %.4f)", humanize.Comma(int64(hit.Pos)), hit.Identity)
	// Both upstream windows end at the gene's 1-based position.
	anchor := hit.Pos
	mcfg := opts.MotifConfig()
	if err := mcfg.CheckWindow(anchor, len(genome.Seq)); err != nil {
		return appcore.Fail(stderr, err)
	}

	// Consensus boxes
	pcfg := opts.PromoterConfig()
	cons := promoter.Locate(genome.Seq, pcfg, anchor, opts.ConsensusWindow)
	if cons.Found() {
		cmdutil.Infof(stderr, opts.Quiet, "consensus %s/%s: %d pair(s) in [%d,%d)", pcfg.BoxA, pcfg.BoxB, cons.Count, cons.RegionStart, cons.RegionEnd)
	} else {
		cmdutil.Infof(stderr, opts.Quiet, "consensus %s/%s: none in [%d,%d)", pcfg.BoxA, pcfg.BoxB, cons.RegionStart, cons.RegionEnd)
	}

	// Control
	control, err := loadControl(ctx, opts, len(genome.Seq), stderr)
	if err != nil {
		return appcore.Fail(stderr, err)
	}
	if len(control.Seq) != len(genome.Seq) {
		cmdutil.Warnf(stderr, opts.Quiet, "control length %s differs from genome length %s; fold changes are not normalized",
			humanize.Comma(int64(len(control.Seq))), humanize.Comma(int64(len(genome.Seq))))
	}

	// Motifs
	eng := motif.New(mcfg)
	bar := progress.New(stderr, "seeds", mcfg.Window-mcfg.SeedLen+1, !opts.Quiet)
	eng.SetProgress(bar.Update)
	res, err := eng.Scan(ctx, genome.Seq, control.Seq, anchor)
	bar.Finish(err == nil)
	if err != nil {
		return appcore.Fail(stderr, err)
	}
	cmdutil.Infof(stderr, opts.Quiet, "motifs: %d retained from %s seeds (%s screened)",
		len(res.Motifs), humanize.Comma(int64(res.Seeds)), humanize.Comma(int64(res.Screened)))

	rep := report.Build(report.Analysis{
		Genome:      report.Input{Path: opts.Genome, ID: genome.ID, Seq: genome.Seq},
		Control:     control,
		GeneLength:  len(geneSeq.Seq),
		Gene:        hit,
		MinIdentity: opts.MinIdentity,
		Promoter:    pcfg,
		Consensus:   cons,
		Motif:       mcfg,
		Scan:        res,
	})

	if err := writeReport(ctx, outw, opts, rep); err != nil {
		return appcore.Fail(stderr, err)
	}
	if len(res.Motifs) > 0 && opts.MotifsOut != "-" {
		if err := writeHeadlines(opts.MotifsOut, rep); err != nil {
			return appcore.Fail(stderr, err)
		}
		cmdutil.Infof(stderr, opts.Quiet, "headline motifs written to %s", opts.MotifsOut)
	}

	if len(res.Motifs) == 0 {
		return opts.NoMatchExitCode
	}
	return appcore.ExitOK
}

func readInput(ctx context.Context, stderr io.Writer, quiet bool, what, path string) (fasta.Sequence, error) {
	s, err := fasta.ReadSequence(ctx, path)
	if err != nil {
		return s, fmt.Errorf("read %s: %w", what, err)
	}
	if len(s.Seq) == 0 {
		return s, appcore.Usagef("%s %s holds no A/C/G/T bases", what, path)
	}
	if s.Skipped > 0 {
		cmdutil.Warnf(stderr, quiet, "%s %s: dropped %s non-ACGT base(s)", what, path, humanize.Comma(int64(s.Skipped)))
	}
	cmdutil.Infof(stderr, quiet, "%s %s: %s bp in %d record(s)", what, path, humanize.Comma(int64(len(s.Seq))), s.Records)
	return s, nil
}

// loadControl reads --control, or samples one as long as the genome and
// optionally saves it to --control-out.
func loadControl(ctx context.Context, opts cli.Options, length int, stderr io.Writer) (report.Input, error) {
	if opts.Control != "" {
		s, err := readInput(ctx, stderr, opts.Quiet, "control", opts.Control)
		if err != nil {
			return report.Input{}, err
		}
		return report.Input{Path: opts.Control, ID: s.ID, Seq: s.Seq}, nil
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seq := randseq.Make(length, seed)
	cmdutil.Infof(stderr, opts.Quiet, "control generated: %s bp (seed %d)", humanize.Comma(int64(length)), seed)

	if opts.ControlOut != "" {
		if err := writeControl(opts.ControlOut, seq, seed); err != nil {
			return report.Input{}, err
		}
	}
	return report.Input{Path: opts.ControlOut, ID: randseq.DefaultID, Seq: seq, Generated: true, Seed: seed}, nil
}

func writeControl(path string, seq []byte, seed int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write control: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("write control: %w", cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	desc := fmt.Sprintf("seed=%d length=%d", seed, len(seq))
	if err := randseq.WriteFASTA(bw, randseq.DefaultID, desc, seq, randseq.DefaultWidth); err != nil {
		return fmt.Errorf("write control: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write control: %w", err)
	}
	return nil
}

func writeReport(ctx context.Context, outw io.Writer, opts cli.Options, rep api.ReportV1) error {
	if opts.Output == output.FormatJSON {
		return output.WriteJSON(outw, rep)
	}
	if opts.Output == output.FormatText {
		if err := output.WriteReportText(outw, rep); err != nil {
			return err
		}
	}
	wf := appcore.NewMotifWriterFactory(opts.Output, opts.Header)
	return appcore.Emit(ctx, outw, rep.Motifs, wf)
}

func writeHeadlines(path string, rep api.ReportV1) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write headline motifs: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("write headline motifs: %w", cerr)
		}
	}()
	if err := output.WriteHeadlines(f, rep.Headlines); err != nil {
		return fmt.Errorf("write headline motifs: %w", err)
	}
	return nil
}
