// core/engine/engine.go
package engine

import (
	"barsplit/core/match"
)

// Config holds matching parameters.
type Config struct {
	MaxDist int         // max edit distance per marker; clamped to len(marker)-1
	Resolve ResolveMode // overlap resolution for split
	HitCap  int         // max raw occurrences kept per marker per read (0 = unlimited)
}

// Engine runs demux and split for one read at a time. It holds no per-read
// state, so one Engine may serve concurrent callers.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// Occurrences runs the matcher for one marker.
func (e *Engine) Occurrences(p *match.Pattern, seq []byte) []match.Occurrence {
	return match.FindCap(p, seq, e.cfg.MaxDist, e.cfg.HitCap)
}

// Assign picks the best barcode for a read from the raw matcher output of
// every candidate.
func (e *Engine) Assign(readID string, seq []byte, patterns []*match.Pattern) Assignment {
	names := make([]string, len(patterns))
	occs := make([][]match.Occurrence, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name()
		occs[i] = e.Occurrences(p, seq)
	}
	return SelectBarcode(readID, names, occs)
}

// SplitResult is the segmentation of one read.
type SplitResult struct {
	Segments []Segment
	Dropped  int // front/back pairs discarded because the back came first
}

// Split locates both strands' adapters, resolves overlaps per adapter, and
// builds the read's segments.
func (e *Engine) Split(readID string, seq []byte, t AdapterTable) SplitResult {
	hits := make([]StrandHits, 0, len(Strands))
	for _, s := range Strands {
		front, back := s.Roles(t.Pair(s))
		hits = append(hits, StrandHits{
			Strand: s,
			Front:  e.cfg.Resolve.Apply(e.Occurrences(front, seq)),
			Back:   e.cfg.Resolve.Apply(e.Occurrences(back, seq)),
		})
	}
	segs, dropped := BuildSegments(readID, len(seq), hits...)
	return SplitResult{Segments: segs, Dropped: dropped}
}
