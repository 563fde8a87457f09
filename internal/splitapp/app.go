// internal/splitapp/app.go
package splitapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"barsplit/core/catalog"
	"barsplit/core/engine"
	"barsplit/core/match"
	"barsplit/internal/appcore"
	"barsplit/internal/cli"
	"barsplit/internal/cmdutil"
	"barsplit/internal/diag"
	"barsplit/internal/output"
	"barsplit/internal/runutil"
	"barsplit/internal/visitors"
)

const Name = "barsplit-split"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunNamed(parent, Name, argv, stdout, stderr)
}

// RunNamed runs split with name shown in usage and version output.
func RunNamed(parent context.Context, name string, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewSplitFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseSplitArgs(fs, argv)
	if code, done := appcore.HandleParseError(err, fs, outw, stderr, func(w io.Writer) { cli.PrintSplitExamples(w, name) }); done {
		return code
	}
	if opts.Version {
		return appcore.PrintVersion(outw, stderr, name)
	}

	table, err := loadTable(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	maxDist := runutil.EffectiveMaxDist("split", opts.MaxDist)
	adapters := []*match.Pattern{table.Forward.A, table.Forward.B, table.Reverse.A, table.Reverse.B}
	for _, w := range runutil.ClampWarnings(maxDist, adapters) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}
	mode, _ := engine.ParseResolveMode(opts.Resolve) // validated by the CLI

	log := appcore.NewLogger(stderr, opts.Common)
	metrics := diag.NewMetrics()
	eng := engine.New(engine.Config{MaxDist: maxDist, Resolve: mode, HitCap: opts.HitCap})
	log.Debug("split configured", "max_dist", maxDist, "max_adapter_len", table.MaxLen(), "resolve", mode.String())

	v := visitors.Split{Engine: eng, Table: table, Metrics: metrics, Log: log}
	return appcore.Run[output.SegmentRecord](
		parent, stdout, stderr,
		appcore.Options{
			Tool:            "split",
			ReadFiles:       opts.ReadFiles,
			OutFile:         opts.OutFile,
			MetricsFile:     opts.MetricsFile,
			Progress:        opts.Progress,
			Quiet:           opts.Quiet,
			NoMatchExitCode: opts.NoMatchExitCode,
		},
		appcore.Env{Log: log, Metrics: metrics},
		v.Visit,
		appcore.NewSegmentWriterFactory(opts.Output),
		func(s diag.Summary) int64 { return s.Segments },
	)
}

func loadTable(o cli.SplitOptions) (engine.AdapterTable, error) {
	if o.AdapterFile != "" {
		return catalog.LoadAdapterTSV(o.AdapterFile)
	}
	return catalog.BuildTable(
		catalog.Spec{A: o.Front, B: o.Back},
		catalog.Spec{A: o.RevA, B: o.RevB},
	)
}
