package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barsplit/core/engine"
	"barsplit/internal/output"
	"barsplit/pkg/api"
)

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "text"}, Formats(AssignmentWriters))
	assert.Equal(t, []string{"fasta", "fastq", "json", "jsonl"}, Formats(SegmentWriters))
}

func TestAssignmentWriterText(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartAssignmentWriter(&buf, output.FormatText, false, 4)
	in <- output.Assigned{Assignment: engine.Assignment{ReadID: "r1", Matched: true, Pattern: "BC1", Start: 2, End: 9}}
	in <- output.Assigned{Assignment: engine.NoMatch("r2")}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "r1\tBC1\t0\t2\t9\nr2\t-\t-\t-\t-\n", buf.String())
}

func TestAssignmentWriterJSONL(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartAssignmentWriter(&buf, output.FormatJSONL, false, 4)
	for _, id := range []string{"a", "b", "c"} {
		in <- output.Assigned{Assignment: engine.NoMatch(id)}
	}
	close(in)
	require.NoError(t, <-done)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	var v api.AssignmentV1
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &v))
	assert.Equal(t, "c", v.ReadID)
	assert.False(t, v.Matched)
}

func TestUnknownFormatDrains(t *testing.T) {
	in, done := StartSegmentWriter(io.Discard, "sam", 1)
	for i := 0; i < 10; i++ {
		in <- output.SegmentRecord{}
	}
	close(in)
	assert.ErrorContains(t, <-done, `unknown split format "sam"`)
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestJSONLBrokenPipeIsSuppressed(t *testing.T) {
	in, done := StartSegmentJSONLWriter(failWriter{err: syscall.EPIPE}, 1)
	for i := 0; i < 3; i++ {
		in <- output.SegmentRecord{Seq: []byte("ACGT")}
	}
	close(in)
	assert.NoError(t, <-done)

	in, done = StartSegmentJSONLWriter(failWriter{err: errors.New("disk full")}, 1)
	in <- output.SegmentRecord{Seq: []byte("ACGT")}
	close(in)
	assert.ErrorContains(t, <-done, "disk full")
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
