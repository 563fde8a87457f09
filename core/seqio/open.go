// core/seqio/open.go
package seqio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the path that selects standard input (or output for Create).
const Stdin = "-"

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Codec names a container format detected on input.
type Codec string

const (
	CodecNone Codec = ""
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Sniff detects a compression container by magic bytes, falling back to the
// file suffix when the header is too short to tell.
func Sniff(head []byte, path string) Codec {
	switch {
	case bytes.HasPrefix(head, magicGzip):
		return CodecGzip
	case bytes.HasPrefix(head, magicZstd):
		return CodecZstd
	case bytes.HasPrefix(head, magicLZ4):
		return CodecLZ4
	case len(head) >= len(magicZstd):
		return CodecNone
	}
	return codecBySuffix(path)
}

func codecBySuffix(path string) Codec {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return CodecGzip
	case strings.HasSuffix(path, ".zst"):
		return CodecZstd
	case strings.HasSuffix(path, ".lz4"):
		return CodecLZ4
	}
	return CodecNone
}

// Open returns a decompressed reader over path. "-" reads stdin; stdin is
// sniffed too, so `zcat`-less pipelines work. Any failure is an *OpenError.
func Open(path string) (io.ReadCloser, error) {
	return OpenWrapped(path, nil)
}

// OpenWrapped is Open with wrap applied to the raw (still compressed) byte
// stream, e.g. to count bytes for a progress bar. A nil wrap is ignored.
func OpenWrapped(path string, wrap func(io.Reader) io.Reader) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer
	)
	if path == Stdin {
		src, closer = os.Stdin, closerFunc(func() error { return nil })
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, &OpenError{Path: path, Err: err}
		}
		src, closer = fh, fh
	}
	if wrap != nil {
		src = wrap(src)
	}
	rc, err := Decode(src, path)
	if err != nil {
		_ = closer.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	return &multiReadCloser{Reader: rc, closers: []io.Closer{rc, closer}}, nil
}

// Decode wraps r in the decompressor its header (or name) calls for.
func Decode(r io.Reader, name string) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	head, _ := br.Peek(4)
	switch Sniff(head, name) {
	case CodecGzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return gr, nil
	case CodecZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(br)), nil
	}
	return io.NopCloser(br), nil
}
