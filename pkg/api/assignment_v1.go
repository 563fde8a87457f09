// pkg/api/assignment_v1.go
package api

// AssignmentV1 is the stable JSON/JSONL schema for demux results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Unmatched reads carry matched=false and no barcode fields.
type AssignmentV1 struct {
	ReadID  string `json:"read_id"`
	Matched bool   `json:"matched"`
	Barcode string `json:"barcode,omitempty"`
	Dist    *int   `json:"distance,omitempty"`
	Start   *int   `json:"start,omitempty"` // inclusive
	End     *int   `json:"end,omitempty"`   // inclusive
	Source  string `json:"source_file,omitempty"`
}
