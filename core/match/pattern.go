// core/match/pattern.go
package match

import (
	"bytes"
	"errors"
	"fmt"

	"barsplit/core/marker"
)

// Pattern is a compiled marker. It is read-only after Compile and safe to
// share between goroutines.
type Pattern struct {
	name  string
	seq   []byte
	masks []byte
}

// Compile validates seq as an IUPAC nucleotide string and precomputes the
// per-position base masks used by Find.
func Compile(name string, seq []byte) (*Pattern, error) {
	if len(seq) == 0 {
		return nil, errors.New("empty marker sequence")
	}
	if i, ok := marker.Valid(seq); !ok {
		return nil, fmt.Errorf("marker %q: invalid base %q at position %d", name, seq[i], i)
	}
	up := bytes.ToUpper(seq)
	masks := make([]byte, len(up))
	for i, c := range up {
		masks[i] = marker.Mask(c)
	}
	return &Pattern{name: name, seq: up, masks: masks}, nil
}

// MustCompile is Compile for literals; it panics on error.
func MustCompile(name, seq string) *Pattern {
	p, err := Compile(name, []byte(seq))
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) Name() string { return p.name }
func (p *Pattern) Len() int     { return len(p.seq) }

// Seq returns a copy of the upper-cased source sequence.
func (p *Pattern) Seq() []byte { return append([]byte(nil), p.seq...) }

func (p *Pattern) String() string { return p.name + ":" + string(p.seq) }
