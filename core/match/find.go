// core/match/find.go
package match

import "barsplit/core/marker"

// Occurrence is one approximate hit of a pattern in a sequence.
// Start and End are inclusive 0-based offsets into the sequence.
type Occurrence struct {
	Start int
	End   int
	Dist  int
}

// Len is the number of sequence bases covered by the occurrence.
func (o Occurrence) Len() int { return o.End - o.Start + 1 }

// Overlaps reports whether two inclusive intervals intersect.
func (o Occurrence) Overlaps(b Occurrence) bool {
	return o.Start <= b.End && b.Start <= o.End
}

// ClampDist bounds maxDist to [0, patternLen-1] so that every reported
// occurrence consumes at least one sequence base.
func ClampDist(maxDist, patternLen int) int {
	if maxDist >= patternLen {
		maxDist = patternLen - 1
	}
	if maxDist < 0 {
		maxDist = 0
	}
	return maxDist
}

// Find reports every end position in seq where p aligns with at most
// maxDist edits (unit cost substitution, insertion, deletion). For each
// such end position one occurrence is returned, carrying the start of the
// best alignment ending there. Results are in ascending End order.
func Find(p *Pattern, seq []byte, maxDist int) []Occurrence {
	return FindCap(p, seq, maxDist, 0)
}

// FindCap is Find with an upper bound on the number of hits kept.
// capHits == 0  ➜ unlimited
func FindCap(p *Pattern, seq []byte, maxDist, capHits int) []Occurrence {
	m := len(p.masks)
	if m == 0 || len(seq) == 0 {
		return nil
	}
	k := ClampDist(maxDist, m)

	// Column DP over the sequence; row 0 is free so alignments may start
	// anywhere (semi-global). start[i] tracks where the best path to
	// cell i entered the sequence.
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	prevStart := make([]int, m+1)
	curStart := make([]int, m+1)
	for i := 0; i <= m; i++ {
		prev[i] = i
	}

	var out []Occurrence
	for j := 1; j <= len(seq); j++ {
		rm := marker.ReadMask(seq[j-1])
		cur[0] = 0
		curStart[0] = j
		for i := 1; i <= m; i++ {
			cost := 1
			if rm&p.masks[i-1] != 0 {
				cost = 0
			}
			// Ties prefer the diagonal, then skipping a marker base, then
			// skipping a sequence base.
			best := prev[i-1] + cost
			st := prevStart[i-1]
			if v := cur[i-1] + 1; v < best {
				best, st = v, curStart[i-1]
			}
			if v := prev[i] + 1; v < best {
				best, st = v, prevStart[i]
			}
			cur[i] = best
			curStart[i] = st
		}
		if cur[m] <= k {
			out = append(out, Occurrence{Start: curStart[m], End: j - 1, Dist: cur[m]})
			if capHits > 0 && len(out) >= capHits {
				break
			}
		}
		prev, cur = cur, prev
		prevStart, curStart = curStart, prevStart
	}
	return out
}
