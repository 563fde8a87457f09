package appcore

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"barsplit/internal/clibase"
	"barsplit/internal/diag"
	"barsplit/internal/version"
	"barsplit/internal/writers"
)

// Flush writes out buffered stdout and maps the result to an exit code.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// HandleParseError prints usage, examples or the parse error and returns
// the exit code. done is false when err was nil and the run should go on.
func HandleParseError(err error, fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, examples func(io.Writer)) (code int, done bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		examples(outw)
		return Flush(outw, stderr, 0), true
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr, 0), true
	}
	_, _ = fmt.Fprintln(stderr, err)
	fs.SetOutput(outw)
	fs.Usage()
	return Flush(outw, stderr, 2), true
}

// PrintVersion prints "<name> version X".
func PrintVersion(outw *bufio.Writer, stderr io.Writer, name string) int {
	_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
	return Flush(outw, stderr, 0)
}

// NewLogger builds the run logger from the shared flags. --quiet keeps
// errors only.
func NewLogger(stderr io.Writer, c clibase.Common) *diag.Logger {
	level, err := diag.ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if c.Quiet {
		level = slog.LevelError
	}
	return diag.NewLogger(stderr, level, c.LogFormat)
}
