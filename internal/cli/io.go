// Package cli implements the fmsi command dispatcher: subcommand parsing,
// help text, and exit codes, in the style of calvinalkan-agent-task's
// internal/cli package (explicit stdout/stderr writers threaded through Run,
// pflag-based flag sets per command, numeric exit codes returned rather than
// os.Exit called from within a subcommand).
package cli

import (
	"fmt"
	"io"
)

// IO carries the input/output streams a command exec function uses,
// instead of reaching for os.Stdin/os.Stdout/os.Stderr directly.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// flush, if set, flushes Out's buffering. query's -F flag calls it after
	// every result line instead of only at process exit.
	flush func() error
}

// Flush flushes Out's underlying buffer, if any.
func (o *IO) Flush() {
	if o.flush != nil {
		_ = o.flush()
	}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.Out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.Out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.Err, a...)
}

// ErrPrintf writes formatted output to stderr.
func (o *IO) ErrPrintf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.Err, format, a...)
}
