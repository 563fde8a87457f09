package appcore

import (
	"io"

	"barsplit/internal/output"
	"barsplit/internal/writers"
)

// ---------------- Assignment writer ----------------

type AssignmentWriterFactory struct {
	Format string
	Header bool
}

func NewAssignmentWriterFactory(format string, header bool) AssignmentWriterFactory {
	return AssignmentWriterFactory{Format: format, Header: header}
}

func (w AssignmentWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Assigned, <-chan error) {
	return writers.StartAssignmentWriter(out, w.Format, w.Header, bufSize)
}

// ---------------- Segment writer ----------------

type SegmentWriterFactory struct {
	Format string
}

func NewSegmentWriterFactory(format string) SegmentWriterFactory {
	return SegmentWriterFactory{Format: format}
}

func (w SegmentWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.SegmentRecord, <-chan error) {
	return writers.StartSegmentWriter(out, w.Format, bufSize)
}
