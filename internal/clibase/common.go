// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"barsplit/core/engine"
	"barsplit/internal/cliutil"
	"barsplit/internal/diag"
)

// Common holds CLI fields shared by demux and split.
type Common struct {
	// Input
	ReadFiles []string

	// Matching
	MaxDist int // -1 = tool default
	Resolve string
	HitCap  int

	// Output
	Output          string
	OutFile         string
	NoMatchExitCode int

	// Diagnostics
	MetricsFile string
	Progress    bool
	LogLevel    string
	LogFormat   string

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --reads/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs. defOutput is the tool's default
// --output value.
func Register(fs *flag.FlagSet, c *Common, defOutput string) {
	// Inputs
	readVal := &sliceValue{dst: &c.ReadFiles}
	fs.Var(readVal, "reads", "FASTA/FASTQ read file(s) (repeatable) or '-'")
	fs.Var(readVal, "s", "alias of --reads")

	// Matching
	fs.IntVar(&c.MaxDist, "max-dist", -1, "max edit distance per marker (-1=tool default) [-1]")
	fs.IntVar(&c.MaxDist, "k", -1, "alias of --max-dist")
	fs.IntVar(&c.HitCap, "hit-cap", 0, "max raw hits kept per marker per read (0=unlimited) [0]")

	// Output
	fs.StringVar(&c.Output, "output", defOutput, "output format ["+defOutput+"]")
	fs.StringVar(&c.Output, "o", defOutput, "alias of --output")
	fs.StringVar(&c.OutFile, "out", "-", "output file; .gz/.zst/.lz4 compress ['-' = stdout]")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 0, "exit code when nothing matched [0]")

	// Diagnostics
	fs.StringVar(&c.MetricsFile, "metrics-file", "", "write Prometheus text metrics here at exit")
	fs.BoolVar(&c.Progress, "progress", false, "show a progress bar on stderr [false]")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.StringVar(&c.LogFormat, "log-format", "text", "log format: text | json [text]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// RegisterResolve adds --resolve. Only split resolves overlapping hits;
// demux selects barcodes from raw matcher output.
func RegisterResolve(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Resolve, "resolve", engine.ResolveFirst.String(), "overlap resolution: first | greedy [first]")
}

// AfterParse expands positionals, then runs shared validation.
func AfterParse(c *Common, posArgs []string, formats []string) error {
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.ReadFiles = append(c.ReadFiles, exp...)
	}
	return Validate(c, formats)
}

// Validate applies shared CLI invariants used by all tools. formats lists
// the --output values the tool accepts.
func Validate(c *Common, formats []string) error {
	if len(c.ReadFiles) == 0 {
		return errors.New("at least one read file is required")
	}
	if c.MaxDist < -1 {
		return errors.New("--max-dist must be ≥ 0 (or -1 for the default)")
	}
	if c.HitCap < 0 {
		return errors.New("--hit-cap must be ≥ 0")
	}
	if _, err := engine.ParseResolveMode(c.Resolve); err != nil {
		return err
	}
	if !contains(formats, c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
	}
	if _, err := diag.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
