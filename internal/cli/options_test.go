package cli

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barsplit/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustDemux(t *testing.T, args ...string) DemuxOptions {
	t.Helper()
	o, err := ParseDemuxArgs(newFS(), args)
	require.NoError(t, err)
	return o
}

func mustSplit(t *testing.T, args ...string) SplitOptions {
	t.Helper()
	o, err := ParseSplitArgs(newFS(), args)
	require.NoError(t, err)
	return o
}

func TestDemuxDefaults(t *testing.T) {
	o := mustDemux(t, "-b", "bc.fa", "reads.fq")
	assert.Equal(t, "bc.fa", o.BarcodeFile)
	assert.Equal(t, []string{"reads.fq"}, o.ReadFiles)
	assert.Equal(t, -1, o.MaxDist)
	assert.Equal(t, "text", o.Output)
	assert.Equal(t, "-", o.OutFile)
	assert.Equal(t, 0, o.NoMatchExitCode)
	assert.False(t, o.Header)
}

func TestDemuxFlags(t *testing.T) {
	o := mustDemux(t,
		"--barcodes", "bc.fa",
		"-s", "a.fq", "--reads", "b.fq",
		"-k", "2", "-o", "jsonl", "--header", "-q",
		"c.fq",
	)
	assert.Equal(t, []string{"a.fq", "b.fq", "c.fq"}, o.ReadFiles)
	assert.Equal(t, 2, o.MaxDist)
	assert.Equal(t, "jsonl", o.Output)
	assert.True(t, o.Header)
	assert.True(t, o.Quiet)
}

func TestDemuxErrors(t *testing.T) {
	cases := map[string][]string{
		"no barcodes":   {"reads.fq"},
		"no reads":      {"-b", "bc.fa"},
		"bad output":    {"-b", "bc.fa", "-o", "fastq", "reads.fq"},
		"bad max-dist":  {"-b", "bc.fa", "-k", "-2", "reads.fq"},
		"resolve unset": {"-b", "bc.fa", "--resolve", "greedy", "reads.fq"},
		"bad log level": {"-b", "bc.fa", "--log-level", "loud", "reads.fq"},
		"bad exit code": {"-b", "bc.fa", "--no-match-exit-code", "300", "reads.fq"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDemuxArgs(newFS(), args)
			assert.Error(t, err)
		})
	}
}

func TestHelpVersionExamples(t *testing.T) {
	_, err := ParseDemuxArgs(newFS(), []string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))

	_, err = ParseSplitArgs(newFS(), []string{"--examples"})
	assert.ErrorIs(t, err, clibase.ErrPrintedAndExitOK)

	o, err := ParseSplitArgs(newFS(), []string{"--version"})
	require.NoError(t, err)
	assert.True(t, o.Version)
}

func TestSplitInline(t *testing.T) {
	o := mustSplit(t, "-F", "AACG", "-B", "TTGA", "reads.fq")
	assert.Equal(t, "AACG", o.Front)
	assert.Equal(t, "TTGA", o.Back)
	assert.Equal(t, "fastq", o.Output)
	assert.Empty(t, o.RevA)
	assert.Equal(t, "first", o.Resolve)
}

func TestSplitAdapterFile(t *testing.T) {
	o := mustSplit(t, "--adapters", "ad.tsv", "-o", "fasta", "--resolve", "greedy", "reads.fq")
	assert.Equal(t, "ad.tsv", o.AdapterFile)
	assert.Equal(t, "fasta", o.Output)
	assert.Equal(t, "greedy", o.Resolve)
}

func TestSplitErrors(t *testing.T) {
	cases := map[string][]string{
		"conflict":         {"-a", "ad.tsv", "--front", "AACG", "reads.fq"},
		"front only":       {"--front", "AACG", "reads.fq"},
		"nothing":          {"reads.fq"},
		"rev a only":       {"--front", "AACG", "--back", "TTGA", "--rev-a", "GG", "reads.fq"},
		"bad resolve":      {"--front", "AACG", "--back", "TTGA", "--resolve", "best", "reads.fq"},
		"text not allowed": {"--front", "AACG", "--back", "TTGA", "-o", "text", "reads.fq"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSplitArgs(newFS(), args)
			assert.Error(t, err)
		})
	}
}
