// core/seqio/lines.go
package seqio

import (
	"bufio"
	"io"
)

// lineReader yields lines without their terminator, counts them, and lets
// the caller push lines back for lookahead.
type lineReader struct {
	br   *bufio.Reader
	buf  []byte
	n    int
	back [][]byte // pushed-back lines, last in first out
}

func newLineReader(r io.Reader) *lineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &lineReader{br: br, buf: make([]byte, 0, 512)}
	}
	return &lineReader{br: bufio.NewReaderSize(r, 1<<20), buf: make([]byte, 0, 512)}
}

// next returns the next line. ok is false at end of input. The returned
// slice is only valid until the following call.
func (lr *lineReader) next() (line []byte, ok bool, err error) {
	if k := len(lr.back); k > 0 {
		lr.buf = append(lr.buf[:0], lr.back[k-1]...)
		lr.back = lr.back[:k-1]
		lr.n++
		return lr.buf, true, nil
	}
	lr.buf = lr.buf[:0]
	read := false
	for {
		seg, isPrefix, err := lr.br.ReadLine()
		if err == io.EOF {
			if read {
				break
			}
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		read = true
		lr.buf = append(lr.buf, seg...)
		if !isPrefix {
			break
		}
	}
	lr.n++
	if k := len(lr.buf); k > 0 && lr.buf[k-1] == '\r' {
		lr.buf = lr.buf[:k-1]
	}
	return lr.buf, true, nil
}

// push returns line to the reader; pushed lines come back in reverse order.
func (lr *lineReader) push(line []byte) {
	lr.back = append(lr.back, append([]byte(nil), line...))
	lr.n--
}

// unread pushes back the most recently returned line.
func (lr *lineReader) unread() { lr.push(lr.buf) }

// line is the number of the most recently returned line.
func (lr *lineReader) line() int { return lr.n }
