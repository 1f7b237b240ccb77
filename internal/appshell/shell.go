// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"uspa/internal/appcore"
)

// RunFunc is the entry point every uspa app exposes.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs app with SIGINT/SIGTERM wired to context cancellation and exits
// with its code. No arguments means "-h".
func Main(app RunFunc) {
	os.Exit(run(app, os.Args[1:], os.Stdout, os.Stderr))
}

func run(app RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	return Normalize(ctx, app(ctx, argv, stdout, stderr))
}

// Normalize turns a clean exit into the cancellation code once ctx is done,
// so an interrupted run never reports success.
func Normalize(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == appcore.ExitOK {
		return appcore.ExitCanceled
	}
	return code
}
