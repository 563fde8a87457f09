package runutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barsplit/core/match"
)

func TestEffectiveMaxDist(t *testing.T) {
	assert.Equal(t, DefaultDemuxMaxDist, EffectiveMaxDist("demux", -1))
	assert.Equal(t, DefaultSplitMaxDist, EffectiveMaxDist("split", -1))
	assert.Equal(t, 2, EffectiveMaxDist("split", 2))
	assert.Equal(t, 0, EffectiveMaxDist("demux", 0))
}

func TestClampWarnings(t *testing.T) {
	pats := []*match.Pattern{
		match.MustCompile("short", "ACG"),
		match.MustCompile("long", "ACGTACGTAC"),
	}
	warns := ClampWarnings(4, pats)
	if assert.Len(t, warns, 1) {
		assert.Contains(t, warns[0], `"short"`)
		assert.Contains(t, warns[0], "using 2")
	}
	assert.Empty(t, ClampWarnings(2, pats))
}
