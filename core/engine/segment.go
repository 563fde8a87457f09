// core/engine/segment.go
package engine

import (
	"sort"

	"barsplit/core/match"
)

// Segment is a read interval bounded by a front adapter and, if found, the
// paired back adapter. Start/End are half-open: [Start, End).
type Segment struct {
	ReadID  string
	Ordinal int
	Strand  Strand
	Start   int
	End     int
	Front   match.Occurrence
	Back    match.Occurrence
	HasBack bool
}

func (s Segment) Len() int { return s.End - s.Start }

// StrandHits are the resolved front and back adapter occurrences found for
// one strand, already mapped through Strand.Roles.
type StrandHits struct {
	Strand Strand
	Front  []match.Occurrence
	Back   []match.Occurrence
}

type triple struct {
	front   match.Occurrence
	back    match.Occurrence
	hasBack bool
	strand  Strand
}

// BuildSegments pairs the i-th front with the i-th back (by start) on each
// strand, merges both strands by front start, and emits the interval
// between each front and its back (or the read end). Pairs whose back
// starts before the front ends are dropped and counted.
func BuildSegments(readID string, readLen int, hits ...StrandHits) (segs []Segment, dropped int) {
	var all []triple
	for _, h := range hits {
		fronts := sortedByStart(h.Front)
		backs := sortedByStart(h.Back)
		for i, f := range fronts {
			t := triple{front: f, strand: h.Strand}
			if i < len(backs) {
				t.back, t.hasBack = backs[i], true
			}
			all = append(all, t)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].front.Start < all[j].front.Start })

	for _, t := range all {
		start := t.front.End + 1
		end := readLen
		if t.hasBack {
			end = t.back.Start
		}
		if end < start {
			dropped++
			continue
		}
		segs = append(segs, Segment{
			ReadID:  readID,
			Ordinal: len(segs),
			Strand:  t.strand,
			Start:   start,
			End:     end,
			Front:   t.front,
			Back:    t.back,
			HasBack: t.hasBack,
		})
	}
	return segs, dropped
}

func sortedByStart(occ []match.Occurrence) []match.Occurrence {
	out := append([]match.Occurrence(nil), occ...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
