// core/engine/resolve.go
package engine

import (
	"fmt"
	"sort"

	"barsplit/core/match"
)

// ResolveMode selects how overlapping occurrences are collapsed.
type ResolveMode int

const (
	// ResolveFirst compares each candidate with the first kept occurrence it
	// overlaps. Order dependent.
	ResolveFirst ResolveMode = iota
	// ResolveGreedy keeps the globally lowest-distance non-overlapping cover.
	ResolveGreedy
)

func (m ResolveMode) String() string {
	if m == ResolveGreedy {
		return "greedy"
	}
	return "first"
}

func ParseResolveMode(v string) (ResolveMode, error) {
	switch v {
	case "", "first":
		return ResolveFirst, nil
	case "greedy":
		return ResolveGreedy, nil
	}
	return ResolveFirst, fmt.Errorf("invalid resolve mode %q (want first|greedy)", v)
}

// Apply runs the resolver m names.
func (m ResolveMode) Apply(occ []match.Occurrence) []match.Occurrence {
	if m == ResolveGreedy {
		return ResolveCover(occ)
	}
	return Resolve(occ)
}

// Resolve collapses occ (in discovery order) into a pairwise
// non-overlapping list. Each candidate is judged against the first kept
// entry it intersects: it replaces that entry in place only with a strictly
// lower distance, otherwise it is dropped, so ties keep the earlier entry.
// A replacing candidate that also bridges later kept entries must beat them
// too, and those entries are evicted. This goes past the plain first-hit
// rule so that the result stays pairwise disjoint. There is no merging beyond the
// candidate's own intersections, so chains of overlaps depend on order.
func Resolve(occ []match.Occurrence) []match.Occurrence {
	out := make([]match.Occurrence, 0, len(occ))
	for _, c := range occ {
		first := -1
		better := true
		for i := range out {
			if !out[i].Overlaps(c) {
				continue
			}
			if first < 0 {
				first = i
			}
			if c.Dist >= out[i].Dist {
				better = false
				break
			}
		}
		switch {
		case first < 0:
			out = append(out, c)
		case better:
			out[first] = c
			kept := out[:first+1]
			for _, o := range out[first+1:] {
				if !o.Overlaps(c) {
					kept = append(kept, o)
				}
			}
			out = kept
		}
	}
	return out
}

// ResolveCover picks occurrences by ascending distance (then start, then
// discovery order), keeping each one that does not intersect an already
// kept occurrence. The result is ordered by start.
func ResolveCover(occ []match.Occurrence) []match.Occurrence {
	idx := make([]int, len(occ))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool {
		a, b := occ[idx[x]], occ[idx[y]]
		if a.Dist != b.Dist {
			return a.Dist < b.Dist
		}
		return a.Start < b.Start
	})
	out := make([]match.Occurrence, 0, len(occ))
pick:
	for _, i := range idx {
		for _, k := range out {
			if k.Overlaps(occ[i]) {
				continue pick
			}
		}
		out = append(out, occ[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
