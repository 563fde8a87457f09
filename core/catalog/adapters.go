// core/catalog/adapters.go
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"barsplit/core/engine"
	"barsplit/core/marker"
	"barsplit/core/match"
)

// Spec is one adapter pair as text, before compilation.
type Spec struct {
	A, B string
}

// DeriveReverse returns the pair searched on the reverse strand for a
// forward pair: the reverse complement of each adapter.
func DeriveReverse(fwd Spec) Spec {
	return Spec{
		A: string(marker.RevComp([]byte(fwd.A))),
		B: string(marker.RevComp([]byte(fwd.B))),
	}
}

// BuildTable compiles a strand → pair table. A zero rev is derived from fwd.
func BuildTable(fwd, rev Spec) (engine.AdapterTable, error) {
	var t engine.AdapterTable
	if fwd.A == "" || fwd.B == "" {
		return t, fmt.Errorf("forward strand: %w", engine.ErrNoAdapters)
	}
	if rev == (Spec{}) {
		rev = DeriveReverse(fwd)
	} else if rev.A == "" || rev.B == "" {
		return t, fmt.Errorf("reverse strand needs both adapters")
	}
	var err error
	if t.Forward, err = compilePair(engine.Forward, fwd); err != nil {
		return t, err
	}
	if t.Reverse, err = compilePair(engine.Reverse, rev); err != nil {
		return t, err
	}
	return t, t.Validate()
}

func compilePair(s engine.Strand, sp Spec) (engine.AdapterPair, error) {
	a, err := match.Compile(s.String()+"_a", []byte(sp.A))
	if err != nil {
		return engine.AdapterPair{}, err
	}
	b, err := match.Compile(s.String()+"_b", []byte(sp.B))
	if err != nil {
		return engine.AdapterPair{}, err
	}
	return engine.AdapterPair{A: a, B: b}, nil
}

// LoadAdapterTSV reads "strand a b" rows ('#' comments, blank lines
// ignored). The forward row is required; a missing reverse row is derived.
func LoadAdapterTSV(path string) (engine.AdapterTable, error) {
	fh, err := os.Open(path)
	if err != nil {
		return engine.AdapterTable{}, err
	}
	defer func() { _ = fh.Close() }()

	var (
		rows [2]Spec
		have [2]bool
	)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return engine.AdapterTable{}, fmt.Errorf("%s:%d bad field count (want: strand a b)", path, ln)
		}
		s, err := engine.ParseStrand(f[0])
		if err != nil {
			return engine.AdapterTable{}, fmt.Errorf("%s:%d %v", path, ln, err)
		}
		if have[s] {
			return engine.AdapterTable{}, fmt.Errorf("%s:%d duplicate %s row", path, ln, s)
		}
		rows[s] = Spec{A: strings.ToUpper(f[1]), B: strings.ToUpper(f[2])}
		have[s] = true
	}
	if err := sc.Err(); err != nil {
		return engine.AdapterTable{}, err
	}
	if !have[engine.Forward] {
		return engine.AdapterTable{}, fmt.Errorf("%s: missing forward row", path)
	}
	t, err := BuildTable(rows[engine.Forward], rows[engine.Reverse])
	if err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
