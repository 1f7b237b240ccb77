// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"uspa-core/motif"
	"uspa/internal/writers"
)

// Exit codes shared by the uspa tools. The no-match code is configurable
// and lives in clibase.Common.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// ErrUsage marks errors caused by the invocation or its inputs rather than
// by I/O.
var ErrUsage = errors.New("usage")

type usageError struct{ msg string }

func (e usageError) Error() string        { return e.msg }
func (e usageError) Is(target error) bool { return target == ErrUsage }

// Usagef returns an error that maps to ExitUsage.
func Usagef(format string, a ...any) error {
	return usageError{msg: fmt.Sprintf(format, a...)}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCanceled
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, ErrUsage), errors.Is(err, motif.ErrBadConfig), errors.Is(err, motif.ErrWindowOutOfRange):
		return ExitUsage
	}
	return ExitIO
}

// Fail reports err on stderr (cancellation and broken pipes stay silent)
// and returns its exit code.
func Fail(stderr io.Writer, err error) int {
	code := ExitCode(err)
	if code != ExitCanceled && code != ExitOK {
		_, _ = fmt.Fprintln(stderr, "error:", err)
	}
	return code
}

// Flush flushes w and returns code, or the I/O exit code when the flush
// fails. A broken pipe is not a failure.
func Flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}
