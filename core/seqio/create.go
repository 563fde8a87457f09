// core/seqio/create.go
package seqio

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Create opens path for writing, compressing by suffix (.gz, .zst, .lz4).
// "-" writes to stdout and is never closed.
func Create(path string) (io.WriteCloser, error) {
	if path == "" || path == Stdin {
		return nopWriteCloser{os.Stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	wc, err := Encode(fh, codecBySuffix(path))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &multiWriteCloser{Writer: wc, closers: []io.Closer{wc, fh}}, nil
}

// Encode wraps w in a compressor for codec. Closing the result flushes the
// compressor but leaves w open.
func Encode(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return zw, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
