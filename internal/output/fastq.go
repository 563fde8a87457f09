// internal/output/fastq.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"barsplit/core/match"
)

func occString(o match.Occurrence) string {
	return strconv.Itoa(o.Start) + "-" + strconv.Itoa(o.End)
}

// SegmentHeader is the record name line without its '@'/'>' marker:
// "{read}_{ordinal} strand={0|1} start={front} end={back|-}".
func SegmentHeader(r SegmentRecord) string {
	back := Missing
	if r.HasBack {
		back = occString(r.Back)
	}
	return fmt.Sprintf("%s_%d strand=%d start=%s end=%s",
		r.ReadID, r.Ordinal, int(r.Strand), occString(r.Front), back)
}

// WriteSegmentFASTQ writes one four-line record. Segments from FASTA reads
// have no qualities and fall back to a two-line FASTA record.
func WriteSegmentFASTQ(w io.Writer, r SegmentRecord) error {
	if r.Qual == nil {
		return WriteSegmentFASTA(w, r)
	}
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", SegmentHeader(r), r.Seq, r.Qual)
	return err
}

// WriteSegmentFASTA writes one two-line record.
func WriteSegmentFASTA(w io.Writer, r SegmentRecord) error {
	_, err := fmt.Fprintf(w, ">%s\n%s\n", SegmentHeader(r), r.Seq)
	return err
}

// StreamSegments writes records from in with write until in is closed.
func StreamSegments(w io.Writer, in <-chan SegmentRecord, write func(io.Writer, SegmentRecord) error) error {
	for r := range in {
		if err := write(w, r); err != nil {
			return err
		}
	}
	return nil
}
