// internal/cli/demux.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"barsplit/internal/clibase"
	"barsplit/internal/cliutil"
	"barsplit/internal/output"
)

// DemuxFormats are the --output values demux accepts.
var DemuxFormats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL}

// DemuxOptions holds all flags for barcode assignment.
type DemuxOptions struct {
	clibase.Common

	BarcodeFile string
	Header      bool
}

// NewDemuxFlagSet returns a FlagSet with demux usage/help.
func NewDemuxFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --barcodes barcodes.fa reads.fq [reads2.fq.gz ...]\n", name)

		_, _ = fmt.Fprintln(out, "\nBarcodes:")
		_, _ = fmt.Fprintln(out, "  -b, --barcodes file         Barcode FASTA (name + IUPAC sequence) [required]")
		_, _ = fmt.Fprintf(out, "      --header                Print a TSV header line (text) [%s]\n", def("header"))
		_, _ = fmt.Fprintln(out, "\nFormats: text | json | jsonl")
	})
	return fs
}

// PrintDemuxExamples prints a quickstart for demux.
func PrintDemuxExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Assign each read to its closest barcode (one line per read).")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintf(w, "  %s -b barcodes.fa -k 3 reads.fastq.gz > assignments.tsv\n", name)
		_, _ = fmt.Fprintf(w, "  %s -b barcodes.fa -o jsonl --out assignments.jsonl.zst runs/*.fq\n", name)
	})
}

// ParseDemuxArgs registers and parses all demux flags.
func ParseDemuxArgs(fs *flag.FlagSet, argv []string) (DemuxOptions, error) {
	var o DemuxOptions
	var help, showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c, output.FormatText)

	fs.StringVar(&o.BarcodeFile, "barcodes", "", "barcode FASTA [required]")
	fs.StringVar(&o.BarcodeFile, "b", "", "alias of --barcodes")
	fs.BoolVar(&o.Header, "header", false, "print a TSV header line [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	if err := clibase.AfterParse(&c, posArgs, DemuxFormats); err != nil {
		return o, err
	}
	if o.BarcodeFile == "" {
		return o, errors.New("--barcodes is required")
	}
	o.Common = c
	return o, nil
}
