// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
)

// FormatAssignmentTSV returns the five demux columns (no trailing newline).
func FormatAssignmentTSV(a Assigned) string {
	if !a.Matched {
		return a.ReadID + "\t" + Missing + "\t" + Missing + "\t" + Missing + "\t" + Missing
	}
	return a.ReadID + "\t" + a.Pattern + "\t" + strconv.Itoa(a.Dist) + "\t" +
		strconv.Itoa(a.Start) + "\t" + strconv.Itoa(a.End)
}

// StreamAssignmentsTSV writes one line per assignment as they arrive.
func StreamAssignmentsTSV(w io.Writer, in <-chan Assigned, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for a := range in {
		if _, err := io.WriteString(w, FormatAssignmentTSV(a)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
