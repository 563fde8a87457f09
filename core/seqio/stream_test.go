package seqio

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, data string) ([]Record, []*ParseError, error) {
	t.Helper()
	var (
		recs  []Record
		skips []*ParseError
	)
	err := Stream(context.Background(), strings.NewReader(data), "test",
		func(r Record) error { recs = append(recs, r); return nil },
		func(e *ParseError) { skips = append(skips, e) },
	)
	return recs, skips, err
}

func TestStreamFASTA(t *testing.T) {
	recs, skips, err := collect(t, "\n>r1 some description\nACGT\nacgt\r\n>r2\n\nTT\n")
	require.NoError(t, err)
	assert.Empty(t, skips)
	require.Len(t, recs, 2)
	assert.Equal(t, Record{ID: "r1", Desc: "some description", Seq: []byte("ACGTacgt")}, recs[0])
	assert.Equal(t, "TT", string(recs[1].Seq))
	assert.Nil(t, recs[1].Qual)
}

func TestStreamFASTAEmptyRecord(t *testing.T) {
	recs, _, err := collect(t, ">r1\n>r2\nAC\n")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Empty(t, recs[0].Seq)
}

func TestStreamFASTQ(t *testing.T) {
	recs, skips, err := collect(t, "@r1 x\nACGT\n+\nIIII\n@r2\nAC\n+r2\n!#\n")
	require.NoError(t, err)
	assert.Empty(t, skips)
	require.Len(t, recs, 2)
	assert.Equal(t, Record{ID: "r1", Desc: "x", Seq: []byte("ACGT"), Qual: []byte("IIII")}, recs[0])
	assert.Equal(t, "!#", string(recs[1].Qual))
}

func TestStreamFASTQSkipsMalformed(t *testing.T) {
	data := strings.Join([]string{
		"@r1", "ACGT", "+", "IIII",
		"@r2", "ACGT", "+", "III", // length mismatch
		"@r3", "ACGT", "IIII", // missing '+'
		"junk",
		"@r4", "AC", "+", "II",
		"@r5", "ACG", // truncated
	}, "\n") + "\n"
	recs, skips, err := collect(t, data)
	require.NoError(t, err)

	var ids []string
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r1", "r4"}, ids)

	require.Len(t, skips, 3)
	assert.Equal(t, 5, skips[0].Line)
	assert.Contains(t, skips[0].Reason, "length mismatch")
	assert.Equal(t, 9, skips[1].Line)
	assert.Contains(t, skips[1].Reason, "missing '+'")
	assert.Equal(t, 17, skips[2].Line)
	assert.Equal(t, "truncated record", skips[2].Reason)
	assert.Equal(t, "test:5: sequence/quality length mismatch (4 != 3)", skips[0].Error())
}

func TestStreamFASTQResyncSkipsAtQualityLines(t *testing.T) {
	data := strings.Join([]string{
		"@r0", "ACGT", "xx", "@III", // missing '+'; its quality starts with '@'
		"@r1", "ACGT", "+", "@III",
		"@r2", "AC", "+", "II",
	}, "\n") + "\n"
	recs, skips, err := collect(t, data)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "r1", recs[0].ID)
	assert.Equal(t, "@III", string(recs[0].Qual))
	assert.Equal(t, "r2", recs[1].ID)

	require.Len(t, skips, 1)
	assert.Equal(t, 1, skips[0].Line)
	assert.Contains(t, skips[0].Reason, "missing '+'")
}

func TestStreamFASTQResyncAfterJunk(t *testing.T) {
	data := strings.Join([]string{
		"@r0", "AC", "+", "II",
		"junk", "@@@@",
		"@r1", "ACGT", "+", "IIII",
	}, "\n") + "\n"
	recs, skips, err := collect(t, data)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "r0", recs[0].ID)
	assert.Equal(t, "r1", recs[1].ID)
	require.Len(t, skips, 1)
	assert.Equal(t, 5, skips[0].Line)
	assert.Contains(t, skips[0].Reason, "expected '@'")
}

func TestStreamUnknownFormat(t *testing.T) {
	_, _, err := collect(t, "ACGT\n")
	var oe *OpenError
	require.ErrorAs(t, err, &oe)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestStreamEmptyInput(t *testing.T) {
	recs, skips, err := collect(t, "")
	assert.NoError(t, err)
	assert.Empty(t, recs)
	assert.Empty(t, skips)
}

func TestStreamEmitErrorStops(t *testing.T) {
	stop := assert.AnError
	n := 0
	err := Stream(context.Background(), strings.NewReader(">a\nA\n>b\nC\n"), "test",
		func(Record) error { n++; return stop }, nil)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}

func TestStreamCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Stream(ctx, strings.NewReader("@r1\nA\n+\nI\n"), "test", func(Record) error { return nil }, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
