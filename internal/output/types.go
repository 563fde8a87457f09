// internal/output/types.go
package output

import "barsplit/core/engine"

// Assigned is a demux result with its provenance.
type Assigned struct {
	engine.Assignment
	SourceFile string
}

// SegmentRecord is a segment with the read bytes it covers already sliced.
// Qual is nil when the input carried no qualities.
type SegmentRecord struct {
	engine.Segment
	Seq        []byte
	Qual       []byte
	SourceFile string
}

// SliceSegment cuts seq (and qual, if present) at the segment's [Start, End).
func SliceSegment(s engine.Segment, seq, qual []byte, source string) SegmentRecord {
	r := SegmentRecord{Segment: s, Seq: seq[s.Start:s.End], SourceFile: source}
	if qual != nil {
		r.Qual = qual[s.Start:s.End]
	}
	return r
}
