// internal/runutil/runutil.go
package runutil

import (
	"fmt"

	"barsplit/core/match"
)

// Default maximum edit distances per tool.
const (
	DefaultDemuxMaxDist = 4
	DefaultSplitMaxDist = 6
)

// EffectiveMaxDist resolves a --max-dist of -1 (auto) to the tool default.
func EffectiveMaxDist(tool string, maxDist int) int {
	if maxDist >= 0 {
		return maxDist
	}
	if tool == "split" {
		return DefaultSplitMaxDist
	}
	return DefaultDemuxMaxDist
}

// ClampWarnings reports markers too short for maxDist. The matcher clamps
// the distance to len(marker)-1 for those; the run continues.
func ClampWarnings(maxDist int, patterns []*match.Pattern) []string {
	var warns []string
	for _, p := range patterns {
		if p == nil {
			continue
		}
		if eff := match.ClampDist(maxDist, p.Len()); eff != maxDist {
			warns = append(warns, fmt.Sprintf("--max-dist %d exceeds length-1 of marker %q (%d bp); using %d", maxDist, p.Name(), p.Len(), eff))
		}
	}
	return warns
}
