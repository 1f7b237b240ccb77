// internal/randseqapp/app.go
package randseqapp

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
	"uspa-core/randseq"
	"uspa/internal/appcore"
	"uspa/internal/clibase"
	"uspa/internal/cmdutil"
	"uspa/internal/randseqcli"
	"uspa/internal/version"
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := randseqcli.NewFlagSet("uspa-randseq")
	fs.SetOutput(io.Discard)

	opts, err := randseqcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.Flush(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			randseqcli.PrintExamples(outw, "uspa-randseq")
			return appcore.Flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, appcore.ExitUsage)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "uspa-randseq version %s\n", version.Version)
		return appcore.Flush(outw, stderr, appcore.ExitOK)
	}

	length := opts.Length
	if opts.Like != "" {
		s, err := fasta.ReadSequence(ctx, opts.Like)
		if err != nil {
			return appcore.Fail(stderr, fmt.Errorf("read %s: %w", opts.Like, err))
		}
		if len(s.Seq) == 0 {
			return appcore.Fail(stderr, appcore.Usagef("%s holds no A/C/G/T bases", opts.Like))
		}
		length = len(s.Seq)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seq := randseq.MakeWeighted(length, opts.Weights, seed)
	if err := ctx.Err(); err != nil {
		return appcore.Fail(stderr, err)
	}
	desc := fmt.Sprintf("seed=%d length=%d", seed, length)

	if opts.Out == "-" {
		if err := randseq.WriteFASTA(outw, opts.ID, desc, seq, opts.Width); err != nil {
			return appcore.Fail(stderr, err)
		}
	} else if err := writeFile(opts.Out, opts.ID, desc, seq, opts.Width); err != nil {
		return appcore.Fail(stderr, err)
	}
	cmdutil.Infof(stderr, opts.Quiet, "generated %s bp (seed %d)", humanize.Comma(int64(length)), seed)
	return appcore.Flush(outw, stderr, appcore.ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeFile(path, id, desc string, seq []byte, width int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err := randseq.WriteFASTA(bw, id, desc, seq, width); err != nil {
		return err
	}
	return bw.Flush()
}
