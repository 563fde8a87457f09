// internal/writers/segment.go
package writers

import (
	"encoding/json"
	"io"

	"barsplit/internal/jsonlutil"
	"barsplit/internal/output"
)

type segmentArgs struct {
	In <-chan output.SegmentRecord
}

func init() {
	RegisterSegment(output.FormatFASTQ, func(w io.Writer, payload interface{}) error {
		return output.StreamSegments(w, payload.(segmentArgs).In, output.WriteSegmentFASTQ)
	})

	RegisterSegment(output.FormatFASTA, func(w io.Writer, payload interface{}) error {
		return output.StreamSegments(w, payload.(segmentArgs).In, output.WriteSegmentFASTA)
	})

	RegisterSegment(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(segmentArgs)
		list := make([]output.SegmentRecord, 0, 128)
		for r := range args.In {
			list = append(list, r)
		}
		return output.WriteSegmentsJSON(w, list)
	})

	RegisterSegment(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(segmentArgs)
		pipe, done := StartSegmentJSONLWriter(w, 64)
		for r := range args.In {
			pipe <- r
		}
		close(pipe)
		return <-done
	})
}

// StartSegmentWriter spins up a writer goroutine for split segments.
func StartSegmentWriter(out io.Writer, format string, bufSize int) (chan<- output.SegmentRecord, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.SegmentRecord, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteSegment(format, out, segmentArgs{In: in})
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// StartSegmentJSONLWriter streams each segment as one JSON line (v1).
func StartSegmentJSONLWriter(out io.Writer, bufSize int) (chan<- output.SegmentRecord, <-chan error) {
	return jsonlutil.Start[output.SegmentRecord](out, bufSize,
		func(enc *json.Encoder, r output.SegmentRecord) error {
			return enc.Encode(output.ToAPISegment(r))
		},
		IsBrokenPipe,
	)
}
