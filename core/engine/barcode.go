// core/engine/barcode.go
package engine

import "barsplit/core/match"

// Assignment is the demux result for one read. Matched=false is the
// "no match" outcome; Pattern, Dist, Start and End are then meaningless.
type Assignment struct {
	ReadID  string
	Matched bool
	Pattern string
	Index   int // position of Pattern in the candidate list
	Dist    int
	Start   int // inclusive
	End     int // inclusive
}

// NoMatch is the assignment for a read no candidate matched.
func NoMatch(readID string) Assignment {
	return Assignment{ReadID: readID, Index: -1}
}

// BestOccurrence returns the minimum-distance occurrence; ties keep the
// first one in matcher order. ok is false for an empty list.
func BestOccurrence(occ []match.Occurrence) (best match.Occurrence, ok bool) {
	for _, o := range occ {
		if !ok || o.Dist < best.Dist {
			best, ok = o, true
		}
	}
	return best, ok
}

// SelectBarcode reduces each candidate's occurrences (occs[i] belongs to
// names[i]) to its best hit and returns the global winner. Ties go to the
// lowest candidate index.
func SelectBarcode(readID string, names []string, occs [][]match.Occurrence) Assignment {
	out := NoMatch(readID)
	for i, list := range occs {
		o, ok := BestOccurrence(list)
		if !ok {
			continue
		}
		if !out.Matched || o.Dist < out.Dist {
			out = Assignment{
				ReadID:  readID,
				Matched: true,
				Pattern: names[i],
				Index:   i,
				Dist:    o.Dist,
				Start:   o.Start,
				End:     o.End,
			}
		}
	}
	return out
}
