// internal/demuxapp/app.go
package demuxapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"barsplit/core/catalog"
	"barsplit/core/engine"
	"barsplit/core/seqio"
	"barsplit/internal/appcore"
	"barsplit/internal/cli"
	"barsplit/internal/cmdutil"
	"barsplit/internal/diag"
	"barsplit/internal/output"
	"barsplit/internal/runutil"
	"barsplit/internal/visitors"
)

const Name = "barsplit-demux"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunNamed(parent, Name, argv, stdout, stderr)
}

// RunNamed runs demux with name shown in usage and version output.
func RunNamed(parent context.Context, name string, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewDemuxFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseDemuxArgs(fs, argv)
	if code, done := appcore.HandleParseError(err, fs, outw, stderr, func(w io.Writer) { cli.PrintDemuxExamples(w, name) }); done {
		return code
	}
	if opts.Version {
		return appcore.PrintVersion(outw, stderr, name)
	}

	log := appcore.NewLogger(stderr, opts.Common)
	metrics := diag.NewMetrics()

	barcodes, err := catalog.LoadBarcodes(parent, opts.BarcodeFile, func(e *seqio.ParseError) {
		log.LogSkip(parent, e)
	})
	if errors.Is(err, context.Canceled) {
		return 130
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	maxDist := runutil.EffectiveMaxDist("demux", opts.MaxDist)
	for _, w := range runutil.ClampWarnings(maxDist, barcodes) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}
	eng := engine.New(engine.Config{MaxDist: maxDist, HitCap: opts.HitCap})
	log.Debug("demux configured",
		"barcodes", len(barcodes),
		"min_len", catalog.MinLen(barcodes),
		"max_len", catalog.MaxLen(barcodes),
		"max_dist", maxDist)

	v := visitors.Demux{Engine: eng, Barcodes: barcodes, Metrics: metrics}
	return appcore.Run[output.Assigned](
		parent, stdout, stderr,
		appcore.Options{
			Tool:            "demux",
			ReadFiles:       opts.ReadFiles,
			OutFile:         opts.OutFile,
			MetricsFile:     opts.MetricsFile,
			Progress:        opts.Progress,
			Quiet:           opts.Quiet,
			NoMatchExitCode: opts.NoMatchExitCode,
		},
		appcore.Env{Log: log, Metrics: metrics},
		v.Visit,
		appcore.NewAssignmentWriterFactory(opts.Output, opts.Header),
		func(s diag.Summary) int64 { return s.Assigned },
	)
}
