// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"barsplit/core/seqio"
)

// Config controls the read pipeline.
type Config struct {
	Buffer int                               // records queued between parser and visitor (>=1)
	Wrap   func(io.Reader) io.Reader         // optional raw-byte wrapper (progress)
	OnSkip seqio.SkipFunc                    // malformed records
	OnFile func(path string, f seqio.Format) // called when an input starts streaming
}

// Read is one parsed record plus the input it came from.
type Read struct {
	seqio.Record
	Source string
}

// ProbeInputs opens and sniffs every input so that a missing or unreadable
// file aborts the run before any output is produced. Formats are returned
// in input order; stdin is reported as FormatUnknown.
func ProbeInputs(paths []string) ([]seqio.Format, error) {
	formats := make([]seqio.Format, len(paths))
	stdin := 0
	for i, p := range paths {
		if p == seqio.Stdin {
			stdin++
			if stdin > 1 {
				return nil, &seqio.OpenError{Path: p, Err: errors.New("stdin given more than once")}
			}
		}
		f, err := seqio.Probe(p)
		if err != nil {
			return nil, err
		}
		formats[i] = f
	}
	return formats, nil
}

// ForEachRead streams every record of every path to visit. It returns the
// first error from parsing or from visit; cancellation of ctx returns
// ctx.Err().
func ForEachRead(ctx context.Context, cfg Config, paths []string, visit func(Read) error) error {
	if cfg.Buffer < 1 {
		cfg.Buffer = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	reads := make(chan Read, cfg.Buffer)

	// Producer
	g.Go(func() error {
		defer close(reads)
		for _, path := range paths {
			if err := streamOne(gctx, cfg, path, reads); err != nil {
				return err
			}
		}
		return nil
	})

	// Consumer
	g.Go(func() error {
		for r := range reads {
			if err := visit(r); err != nil {
				return err
			}
		}
		return nil
	})

	err := g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func streamOne(ctx context.Context, cfg Config, path string, out chan<- Read) error {
	rc, err := seqio.OpenWrapped(path, cfg.Wrap)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	started := false
	return seqio.Stream(ctx, rc, path, func(rec seqio.Record) error {
		if !started && cfg.OnFile != nil {
			started = true
			cfg.OnFile(path, formatOf(rec))
		}
		select {
		case out <- Read{Record: rec, Source: path}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, cfg.OnSkip)
}

func formatOf(rec seqio.Record) seqio.Format {
	if rec.Qual != nil {
		return seqio.FormatFASTQ
	}
	return seqio.FormatFASTA
}
