package diag

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// Progress shows bytes consumed across all inputs on a terminal bar.
// A nil *Progress is valid and does nothing.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress sizes the bar from the regular files in paths; stdin and
// unreadable paths contribute nothing.
func NewProgress(w io.Writer, paths []string) *Progress {
	var total int64
	for _, p := range paths {
		if p == "-" {
			continue
		}
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			total += st.Size()
		}
	}
	bar := pb.Full.New(0)
	bar.SetTotal(total)
	bar.SetWriter(w)
	bar.Set(pb.Bytes, true)
	bar.Start()
	return &Progress{bar: bar}
}

// Wrap counts bytes read through r on the bar.
func (p *Progress) Wrap(r io.Reader) io.Reader {
	if p == nil {
		return r
	}
	return p.bar.NewProxyReader(r)
}

// Finish stops the bar.
func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
