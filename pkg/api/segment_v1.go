// pkg/api/segment_v1.go
package api

// OccurrenceV1 is one adapter hit; start/end are inclusive.
type OccurrenceV1 struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Dist  int `json:"distance"`
}

// SegmentV1 is the stable JSON/JSONL schema for split segments.
// Start/End are half-open read offsets.
type SegmentV1 struct {
	ReadID  string        `json:"read_id"`
	Ordinal int           `json:"ordinal"`
	Strand  int           `json:"strand"` // 0 forward, 1 reverse
	Start   int           `json:"start"`
	End     int           `json:"end"`
	Front   OccurrenceV1  `json:"front"`
	Back    *OccurrenceV1 `json:"back,omitempty"`
	Seq     string        `json:"seq"`
	Qual    string        `json:"qual,omitempty"`
	Source  string        `json:"source_file,omitempty"`
}
