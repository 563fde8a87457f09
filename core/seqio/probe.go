// core/seqio/probe.go
package seqio

import (
	"bytes"
	"fmt"
	"io"
)

// Probe opens path, decodes it, and reports the record format from the first
// non-blank line, so that unreadable inputs fail before any output is
// written. Stdin cannot be rewound and is reported as FormatUnknown without
// being read.
func Probe(path string) (Format, error) {
	if path == Stdin {
		return FormatUnknown, nil
	}
	rc, err := Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer func() { _ = rc.Close() }()
	return DetectFormat(rc, path)
}

// DetectFormat consumes r up to the first non-blank line. Empty input is
// FormatUnknown with no error.
func DetectFormat(r io.Reader, source string) (Format, error) {
	lr := newLineReader(r)
	for {
		line, ok, err := lr.next()
		if err != nil {
			return FormatUnknown, &OpenError{Path: source, Err: fmt.Errorf("read: %w", err)}
		}
		if !ok {
			return FormatUnknown, nil
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		switch line[0] {
		case '>':
			return FormatFASTA, nil
		case '@':
			return FormatFASTQ, nil
		}
		return FormatUnknown, &OpenError{Path: source, Err: ErrUnknownFormat}
	}
}
