// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"barsplit/core/seqio"
	"barsplit/internal/cmdutil"
	"barsplit/internal/diag"
	"barsplit/internal/pipeline"
	"barsplit/internal/writers"
)

type Options struct {
	Tool      string // "demux" or "split"; used in logs
	ReadFiles []string
	OutFile   string // "" or "-" = stdout

	MetricsFile string
	Progress    bool

	Quiet           bool
	NoMatchExitCode int
}

// Env carries the diagnostics shared by the visitor and the run loop.
type Env struct {
	Log     *diag.Logger
	Metrics *diag.Metrics
}

type VisitorFunc[T any] func(pipeline.Read) ([]T, error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// HitsFunc reports how many reads counted as a match, for --no-match-exit-code.
type HitsFunc func(diag.Summary) int64

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	env Env,
	visit VisitorFunc[T],
	wf WriterFactory[T],
	hits HitsFunc,
) int {
	if env.Log == nil {
		env.Log = diag.NoopLogger()
	}
	if env.Metrics == nil {
		env.Metrics = diag.NewMetrics()
	}

	// Every input must open and sniff cleanly before output starts.
	formats, err := pipeline.ProbeInputs(o.ReadFiles)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	for i, p := range o.ReadFiles {
		env.Log.Debug("input", "path", p, "format", formats[i].String())
	}

	var sink io.WriteCloser = nopCloser{stdout}
	if o.OutFile != "" && o.OutFile != seqio.Stdin {
		sink, err = seqio.Create(o.OutFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}
	outw := bufio.NewWriterSize(sink, 64<<10)

	var prog *diag.Progress
	if o.Progress {
		prog = diag.NewProgress(stderr, o.ReadFiles)
	}

	inCh, writeErr := wf.Start(outw, 256)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	_, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{
			Buffer: 64,
			Wrap:   prog.Wrap,
			OnSkip: func(e *seqio.ParseError) {
				env.Metrics.RecordSkip()
				env.Log.LogSkip(ctx, e)
			},
			OnFile: func(path string, f seqio.Format) {
				env.Log.WithSource(path).DebugContext(ctx, "streaming input", "format", f.String())
			},
		},
		o.ReadFiles,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	prog.Finish()

	code := finish(stderr, <-writeErr, outw, sink)

	sum := env.Metrics.Summary()
	if o.MetricsFile != "" {
		if err := env.Metrics.WriteTextfile(o.MetricsFile); err != nil {
			_, _ = fmt.Fprintf(stderr, "write metrics: %v\n", err)
			if code == 0 {
				code = 3
			}
		}
	}
	if code >= 0 {
		return code
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	env.Log.LogSummary(ctx, o.Tool, sum)
	if hits != nil && hits(sum) == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

// finish surfaces writer, flush and close errors. It returns -1 when the
// output side succeeded and the caller should decide the exit code.
func finish(stderr io.Writer, werr error, outw *bufio.Writer, sink io.Closer) int {
	if writers.IsBrokenPipe(werr) {
		_ = sink.Close()
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		_ = sink.Close()
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		_ = sink.Close()
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		_ = sink.Close()
		return 3
	}
	if e := sink.Close(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return -1
}
