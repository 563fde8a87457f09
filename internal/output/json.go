// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"barsplit/pkg/api"
)

func intp(v int) *int { return &v }

// ToAPIAssignment converts a demux result to the stable wire schema (v1).
func ToAPIAssignment(a Assigned) api.AssignmentV1 {
	v := api.AssignmentV1{ReadID: a.ReadID, Matched: a.Matched, Source: a.SourceFile}
	if a.Matched {
		v.Barcode = a.Pattern
		v.Dist = intp(a.Dist)
		v.Start = intp(a.Start)
		v.End = intp(a.End)
	}
	return v
}

// ToAPISegment converts a segment record to the stable wire schema (v1).
func ToAPISegment(r SegmentRecord) api.SegmentV1 {
	v := api.SegmentV1{
		ReadID:  r.ReadID,
		Ordinal: r.Ordinal,
		Strand:  int(r.Strand),
		Start:   r.Start,
		End:     r.End,
		Front:   api.OccurrenceV1{Start: r.Front.Start, End: r.Front.End, Dist: r.Front.Dist},
		Seq:     string(r.Seq),
		Qual:    string(r.Qual),
		Source:  r.SourceFile,
	}
	if r.HasBack {
		v.Back = &api.OccurrenceV1{Start: r.Back.Start, End: r.Back.End, Dist: r.Back.Dist}
	}
	return v
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteAssignmentsJSON writes a single JSON array of v1 assignments.
func WriteAssignmentsJSON(w io.Writer, list []Assigned) error {
	out := make([]api.AssignmentV1, 0, len(list))
	for _, a := range list {
		out = append(out, ToAPIAssignment(a))
	}
	return EncodePretty(w, out)
}

// WriteSegmentsJSON writes a single JSON array of v1 segments.
func WriteSegmentsJSON(w io.Writer, list []SegmentRecord) error {
	out := make([]api.SegmentV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPISegment(r))
	}
	return EncodePretty(w, out)
}
