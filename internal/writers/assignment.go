// internal/writers/assignment.go
package writers

import (
	"encoding/json"
	"io"

	"barsplit/internal/jsonlutil"
	"barsplit/internal/output"
)

type assignmentArgs struct {
	Header bool
	In     <-chan output.Assigned
}

func init() {
	RegisterAssignment(output.FormatText, func(w io.Writer, payload interface{}) error {
		args := payload.(assignmentArgs)
		return output.StreamAssignmentsTSV(w, args.In, args.Header)
	})

	RegisterAssignment(output.FormatJSON, func(w io.Writer, payload interface{}) error {
		args := payload.(assignmentArgs)
		list := make([]output.Assigned, 0, 128)
		for a := range args.In {
			list = append(list, a)
		}
		return output.WriteAssignmentsJSON(w, list)
	})

	RegisterAssignment(output.FormatJSONL, func(w io.Writer, payload interface{}) error {
		args := payload.(assignmentArgs)
		pipe, done := StartAssignmentJSONLWriter(w, 64)
		for a := range args.In {
			pipe <- a
		}
		close(pipe)
		return <-done
	})
}

// StartAssignmentWriter spins up a writer goroutine for demux results.
func StartAssignmentWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.Assigned, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Assigned, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteAssignment(format, out, assignmentArgs{Header: header, In: in})
		// drain so producers never block on an unknown format or early error
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// StartAssignmentJSONLWriter streams each assignment as one JSON line (v1).
func StartAssignmentJSONLWriter(out io.Writer, bufSize int) (chan<- output.Assigned, <-chan error) {
	return jsonlutil.Start[output.Assigned](out, bufSize,
		func(enc *json.Encoder, a output.Assigned) error {
			return enc.Encode(output.ToAPIAssignment(a))
		},
		IsBrokenPipe,
	)
}
