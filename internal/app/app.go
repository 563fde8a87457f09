// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"barsplit/internal/appcore"
	"barsplit/internal/demuxapp"
	"barsplit/internal/splitapp"
)

const Name = "barsplit"

func usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s: barcode demultiplexing and adapter splitting for long reads\n\n", Name)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintf(w, "  %s demux [options] --barcodes barcodes.fa reads.fq...\n", Name)
	_, _ = fmt.Fprintf(w, "  %s split [options] (--adapters adapters.tsv | --front A --back B) reads.fq...\n", Name)
	_, _ = fmt.Fprintf(w, "\nRun '%s <command> --help' for command flags.\n", Name)
}

// RunContext dispatches to the demux or split subcommand.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	if len(argv) == 0 {
		usage(outw)
		return appcore.Flush(outw, stderr, 0)
	}
	switch cmd, rest := argv[0], argv[1:]; cmd {
	case "demux":
		return demuxapp.RunNamed(parent, Name+" demux", rest, stdout, stderr)
	case "split":
		return splitapp.RunNamed(parent, Name+" split", rest, stdout, stderr)
	case "-h", "--help", "help":
		usage(outw)
		return appcore.Flush(outw, stderr, 0)
	case "-v", "--version", "version":
		return appcore.PrintVersion(outw, stderr, Name)
	default:
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(outw)
		return appcore.Flush(outw, stderr, 2)
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
