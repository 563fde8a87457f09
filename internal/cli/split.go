// internal/cli/split.go
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

// SplitFormats are the --output values split accepts.
var SplitFormats = []string{output.FormatFASTQ, output.FormatFASTA, output.FormatJSON, output.FormatJSONL}

// SplitOptions holds all flags for adapter splitting.
type SplitOptions struct {
	clibase.Common

	AdapterFile string
	Front       string
	Back        string
	RevA        string
	RevB        string
}

// NewSplitFlagSet returns a FlagSet with split usage/help.
func NewSplitFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --front AAA --back TTT reads.fq\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --adapters adapters.tsv reads.fq\n", name)

		_, _ = fmt.Fprintln(out, "\nAdapters:")
		_, _ = fmt.Fprintln(out, "  -a, --adapters file         Adapter TSV (strand a b; strand 0|1|+|-) [*]")
		_, _ = fmt.Fprintln(out, "  -F, --front string          Forward-strand front adapter (5'→3') [*]")
		_, _ = fmt.Fprintln(out, "  -B, --back string           Forward-strand back adapter (5'→3') [*]")
		_, _ = fmt.Fprintln(out, "      --rev-a string          Reverse-strand A adapter, searched as its back [revcomp of --front]")
		_, _ = fmt.Fprintln(out, "      --rev-b string          Reverse-strand B adapter, searched as its front [revcomp of --back]")
		_, _ = fmt.Fprintln(out, "\nFormats: fastq | fasta | json | jsonl (fastq falls back to FASTA records for FASTA input)")
	})
	return fs
}

// PrintSplitExamples prints a quickstart for split.
func PrintSplitExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Cut reads into the segments bounded by front/back adapters.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintf(w, "  %s --front AATGTACTTCGTTCAGTTACGTATTGCT --back GCAATACGTAACTGAACGAAGT reads.fq.gz > segments.fq\n", name)
		_, _ = fmt.Fprintf(w, "  %s -a adapters.tsv --out segments.fq.gz --metrics-file split.prom reads.fq\n", name)
	})
}

// ParseSplitArgs registers and parses all split flags.
func ParseSplitArgs(fs *flag.FlagSet, argv []string) (SplitOptions, error) {
	var o SplitOptions
	var help, showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c, output.FormatFASTQ)
	clibase.RegisterResolve(fs, &c)

	fs.StringVar(&o.AdapterFile, "adapters", "", "adapter TSV [*]")
	fs.StringVar(&o.AdapterFile, "a", "", "alias of --adapters")
	fs.StringVar(&o.Front, "front", "", "forward-strand front adapter [*]")
	fs.StringVar(&o.Front, "F", "", "alias of --front")
	fs.StringVar(&o.Back, "back", "", "forward-strand back adapter [*]")
	fs.StringVar(&o.Back, "B", "", "alias of --back")
	fs.StringVar(&o.RevA, "rev-a", "", "reverse-strand A adapter (back role)")
	fs.StringVar(&o.RevB, "rev-b", "", "reverse-strand B adapter (front role)")

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

	if err := clibase.AfterParse(&c, posArgs, SplitFormats); err != nil {
		return o, err
	}
	if err := validateAdapters(&o); err != nil {
		return o, err
	}
	o.Common = c
	return o, nil
}

func validateAdapters(o *SplitOptions) error {
	usingFile := o.AdapterFile != ""
	usingInline := o.Front != "" || o.Back != "" || o.RevA != "" || o.RevB != ""
	switch {
	case usingFile && usingInline:
		return errors.New("--adapters conflicts with --front/--back/--rev-a/--rev-b")
	case !usingFile && !usingInline:
		return errors.New("provide --adapters or --front/--back")
	case usingInline && (o.Front == "" || o.Back == ""):
		return errors.New("--front and --back must be supplied together")
	case (o.RevA == "") != (o.RevB == ""):
		return errors.New("--rev-a and --rev-b must be supplied together")
	}
	return nil
}
