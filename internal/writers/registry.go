// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Writer registries (format → handler). Register in init() blocks from the
// assignment/segment writer files.
var (
	AssignmentWriters = map[string]func(w io.Writer, data interface{}) error{}
	SegmentWriters    = map[string]func(w io.Writer, data interface{}) error{}
)

// Register helpers (idempotent last-wins)
func RegisterAssignment(format string, fn func(io.Writer, interface{}) error) {
	AssignmentWriters[format] = fn
}
func RegisterSegment(format string, fn func(io.Writer, interface{}) error) {
	SegmentWriters[format] = fn
}

// Dispatch helpers used by factories / callers.
func WriteAssignment(format string, w io.Writer, payload interface{}) error {
	fn, ok := AssignmentWriters[format]
	if !ok {
		return fmt.Errorf("unknown demux format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
func WriteSegment(format string, w io.Writer, payload interface{}) error {
	fn, ok := SegmentWriters[format]
	if !ok {
		return fmt.Errorf("unknown split format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Formats lists the registered names of a registry, sorted.
func Formats(reg map[string]func(io.Writer, interface{}) error) []string {
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
