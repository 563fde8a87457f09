// core/engine/strand.go
package engine

import (
	"errors"
	"fmt"
	"strings"

	"barsplit/core/match"
)

// Strand is the orientation an adapter pair is searched in.
type Strand uint8

const (
	Forward Strand = 0
	Reverse Strand = 1
)

// Strands lists both orientations in output order.
var Strands = [...]Strand{Forward, Reverse}

func (s Strand) String() string {
	if s == Reverse {
		return "reverse"
	}
	return "forward"
}

// ParseStrand accepts 0|1, +|-, forward|reverse (and fwd|rev).
func ParseStrand(v string) (Strand, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "+", "forward", "fwd", "f":
		return Forward, nil
	case "1", "-", "reverse", "rev", "r":
		return Reverse, nil
	}
	return Forward, fmt.Errorf("invalid strand %q (want 0|1, +|-, forward|reverse)", v)
}

// AdapterPair holds the two adapters searched on one strand, in the order
// they appear on the forward molecule.
type AdapterPair struct {
	A *match.Pattern
	B *match.Pattern
}

// Roles maps a strand's pair to (front, back). The reverse strand is the
// complementary molecule, so its adapters bound the payload the other way
// round.
func (s Strand) Roles(p AdapterPair) (front, back *match.Pattern) {
	if s == Reverse {
		return p.B, p.A
	}
	return p.A, p.B
}

// AdapterTable is the strand → adapter pair configuration for split.
type AdapterTable struct {
	Forward AdapterPair
	Reverse AdapterPair
}

// Pair returns the adapter pair configured for s.
func (t AdapterTable) Pair(s Strand) AdapterPair {
	if s == Reverse {
		return t.Reverse
	}
	return t.Forward
}

// Validate checks that all four adapters are present.
func (t AdapterTable) Validate() error {
	for _, s := range Strands {
		p := t.Pair(s)
		if p.A == nil || p.B == nil {
			return fmt.Errorf("adapter table: %s strand needs both adapters", s)
		}
	}
	return nil
}

// MaxLen is the longest adapter in the table.
func (t AdapterTable) MaxLen() int {
	n := 0
	for _, s := range Strands {
		p := t.Pair(s)
		for _, pat := range []*match.Pattern{p.A, p.B} {
			if pat != nil && pat.Len() > n {
				n = pat.Len()
			}
		}
	}
	return n
}

// ErrNoAdapters is returned by builders given an empty table.
var ErrNoAdapters = errors.New("no adapters configured")
