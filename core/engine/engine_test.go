package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barsplit/core/marker"
	"barsplit/core/match"
)

const (
	adapterA = "ACGTTGCAAC"
	adapterB = "TTGGCCAATG"
)

func testTable() AdapterTable {
	rc := func(s string) string { return string(marker.RevComp([]byte(s))) }
	return AdapterTable{
		Forward: AdapterPair{A: match.MustCompile("forward_a", adapterA), B: match.MustCompile("forward_b", adapterB)},
		Reverse: AdapterPair{A: match.MustCompile("reverse_a", rc(adapterA)), B: match.MustCompile("reverse_b", rc(adapterB))},
	}
}

// C*10 + A + T*30 + B + C*10: A at [10,19], B at [50,59].
func forwardRead() []byte {
	return []byte(strings.Repeat("C", 10) + adapterA + strings.Repeat("T", 30) + adapterB + strings.Repeat("C", 10))
}

func TestSplitForwardRead(t *testing.T) {
	eng := New(Config{MaxDist: 0})
	seq := forwardRead()
	res := eng.Split("r1", seq, testTable())

	require.Len(t, res.Segments, 1)
	assert.Zero(t, res.Dropped)
	s := res.Segments[0]
	assert.Equal(t, Forward, s.Strand)
	assert.Equal(t, match.Occurrence{Start: 10, End: 19}, s.Front)
	assert.Equal(t, match.Occurrence{Start: 50, End: 59}, s.Back)
	assert.Equal(t, 20, s.Start)
	assert.Equal(t, 50, s.End)
	assert.Equal(t, strings.Repeat("T", 30), string(seq[s.Start:s.End]))
}

func TestSplitReverseRead(t *testing.T) {
	eng := New(Config{MaxDist: 0})
	seq := marker.RevComp(forwardRead())
	res := eng.Split("r1", seq, testTable())

	require.Len(t, res.Segments, 1)
	s := res.Segments[0]
	assert.Equal(t, Reverse, s.Strand)
	assert.Equal(t, 20, s.Start)
	assert.Equal(t, 50, s.End)
	assert.Equal(t, strings.Repeat("A", 30), string(seq[s.Start:s.End]))
}

func TestSplitToleratesEdits(t *testing.T) {
	seq := forwardRead()
	seq[12] = 'A' // substitution inside adapter A
	res := New(Config{MaxDist: 2}).Split("r1", seq, testTable())
	require.NotEmpty(t, res.Segments)
	assert.Equal(t, 20, res.Segments[0].Start)
	assert.Equal(t, 50, res.Segments[0].End)
}

func TestSplitNoAdapters(t *testing.T) {
	res := New(Config{MaxDist: 1}).Split("r1", []byte(strings.Repeat("C", 40)), testTable())
	assert.Empty(t, res.Segments)
	assert.Zero(t, res.Dropped)
}

func TestSplitShortRead(t *testing.T) {
	res := New(Config{MaxDist: 0}).Split("r1", []byte("ACG"), testTable())
	assert.Empty(t, res.Segments)
}

func TestAssign(t *testing.T) {
	bcs := []*match.Pattern{
		match.MustCompile("BC1", "AAAACCCCGGGG"),
		match.MustCompile("BC2", "TTTTGGGGCCCC"),
	}
	eng := New(Config{MaxDist: 1})

	a := eng.Assign("r1", []byte("CTCTCTCT"+"TTTTGGGGCCCC"+"CTCTCTCT"), bcs)
	assert.True(t, a.Matched)
	assert.Equal(t, "BC2", a.Pattern)
	assert.Equal(t, 0, a.Dist)
	assert.Equal(t, 8, a.Start)
	assert.Equal(t, 19, a.End)

	a = eng.Assign("r2", []byte(strings.Repeat("CT", 10)), bcs)
	assert.False(t, a.Matched)
}

func TestAdapterTableValidate(t *testing.T) {
	assert.NoError(t, testTable().Validate())
	assert.Equal(t, 10, testTable().MaxLen())
	assert.Error(t, AdapterTable{}.Validate())
}
