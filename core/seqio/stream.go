// core/seqio/stream.go
package seqio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Record is one parsed sequence record. Qual is nil for FASTA input and
// has the same length as Seq for FASTQ input.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Qual []byte
}

// Format is the record grammar of an input.
type Format int

const (
	FormatUnknown Format = iota
	FormatFASTA
	FormatFASTQ
)

func (f Format) String() string {
	switch f {
	case FormatFASTA:
		return "fasta"
	case FormatFASTQ:
		return "fastq"
	}
	return "unknown"
}

// ErrUnknownFormat is returned when an input starts with neither '>' nor '@'.
var ErrUnknownFormat = errors.New("input is neither FASTA nor FASTQ")

// SkipFunc receives malformed records that were dropped.
type SkipFunc func(*ParseError)

// Stream parses FASTA or FASTQ (detected from the first non-blank line) from
// r and calls emit once per well-formed record, in input order. Malformed
// records go to skip and parsing continues. Returning an error from emit
// stops the stream with that error. Cancellation is honored between records.
func Stream(ctx context.Context, r io.Reader, source string, emit func(Record) error, skip SkipFunc) error {
	if skip == nil {
		skip = func(*ParseError) {}
	}
	lr := newLineReader(r)
	for {
		line, ok, err := lr.next()
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if !ok {
			return nil
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		lr.unread()
		switch line[0] {
		case '>':
			return streamFASTA(ctx, lr, source, emit, skip)
		case '@':
			return streamFASTQ(ctx, lr, source, emit, skip)
		}
		return &OpenError{Path: source, Err: ErrUnknownFormat}
	}
}

// StreamPath opens path (see Open) and streams its records.
func StreamPath(ctx context.Context, path string, emit func(Record) error, skip SkipFunc) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return Stream(ctx, rc, path, emit, skip)
}

func streamFASTA(ctx context.Context, lr *lineReader, source string, emit func(Record) error, skip SkipFunc) error {
	var (
		id, desc  string
		seq       = make([]byte, 0, 1<<12)
		open      bool
		startLine int
		orphan    bool
	)
	flush := func() error {
		if !open {
			return nil
		}
		open = false
		if id == "" {
			skip(&ParseError{Source: source, Line: startLine, Reason: "empty record id"})
			return nil
		}
		return emit(Record{ID: id, Desc: desc, Seq: append([]byte(nil), seq...)})
	}

	for {
		line, ok, err := lr.next()
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if !ok {
			break
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			id, desc = splitHeader(line[1:])
			seq = seq[:0]
			open, orphan = true, false
			startLine = lr.line()
			continue
		}
		if !open {
			if !orphan {
				skip(&ParseError{Source: source, Line: lr.line(), Reason: "sequence data before header"})
				orphan = true
			}
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	return flush()
}

func streamFASTQ(ctx context.Context, lr *lineReader, source string, emit func(Record) error, skip SkipFunc) error {
	bad := func(line int, format string, a ...any) {
		skip(&ParseError{Source: source, Line: line, Reason: fmt.Sprintf(format, a...)})
	}
	// resync discards lines up to the next record start: an '@' line whose
	// third line begins with '+'. Quality lines may start with '@' too.
	resync := func() error {
		for {
			line, ok, err := lr.next()
			if err != nil || !ok {
				return err
			}
			if len(line) == 0 || line[0] != '@' {
				continue
			}
			hdr := append([]byte(nil), line...)
			line, ok, err = lr.next()
			if err != nil {
				return err
			}
			if !ok {
				lr.push(hdr)
				return nil
			}
			seq := append([]byte(nil), line...)
			line, ok, err = lr.next()
			if err != nil {
				return err
			}
			if !ok || (len(line) > 0 && line[0] == '+') {
				if ok {
					lr.unread()
				}
				lr.push(seq)
				lr.push(hdr)
				return nil
			}
			lr.unread()
			lr.push(seq)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, ok, err := lr.next()
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if !ok {
			return nil
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		start := lr.line()
		if line[0] != '@' {
			bad(start, "expected '@' header")
			if err := resync(); err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			continue
		}
		id, desc := splitHeader(line[1:])

		line, ok, err = lr.next()
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if !ok {
			bad(start, "truncated record")
			return nil
		}
		seq := append(make([]byte, 0, len(line)), bytes.TrimSpace(line)...)

		line, ok, err = lr.next()
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if !ok {
			bad(start, "truncated record")
			return nil
		}
		if len(line) == 0 || line[0] != '+' {
			bad(start, "missing '+' separator")
			lr.unread()
			if err := resync(); err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			continue
		}

		line, ok, err = lr.next()
		if err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
		if !ok {
			bad(start, "truncated record")
			return nil
		}
		qual := append(make([]byte, 0, len(line)), bytes.TrimSpace(line)...)

		if len(seq) != len(qual) {
			bad(start, "sequence/quality length mismatch (%d != %d)", len(seq), len(qual))
			continue
		}
		if id == "" {
			bad(start, "empty record id")
			continue
		}
		if err := emit(Record{ID: id, Desc: desc, Seq: seq, Qual: qual}); err != nil {
			return err
		}
	}
}

func splitHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
