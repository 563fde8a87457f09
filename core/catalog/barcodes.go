// core/catalog/barcodes.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"barsplit/core/match"
	"barsplit/core/seqio"
)

// ErrNoBarcodes is returned for a barcode file without usable records.
var ErrNoBarcodes = errors.New("no barcodes loaded")

// LoadBarcodes reads a FASTA (or FASTQ) marker file and compiles one
// pattern per record, in file order. Malformed records are passed to skip.
// Duplicate names and invalid sequences are errors.
func LoadBarcodes(ctx context.Context, path string, skip seqio.SkipFunc) ([]*match.Pattern, error) {
	var (
		list []*match.Pattern
		seen = map[string]struct{}{}
	)
	err := seqio.StreamPath(ctx, path, func(r seqio.Record) error {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%s: duplicate barcode %q", path, r.ID)
		}
		p, err := match.Compile(r.ID, r.Seq)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		seen[r.ID] = struct{}{}
		list = append(list, p)
		return nil
	}, skip)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoBarcodes)
	}
	return list, nil
}

// MaxLen is the longest pattern in list.
func MaxLen(list []*match.Pattern) int {
	n := 0
	for _, p := range list {
		if p.Len() > n {
			n = p.Len()
		}
	}
	return n
}

// MinLen is the shortest pattern in list (0 for an empty list).
func MinLen(list []*match.Pattern) int {
	n := 0
	for i, p := range list {
		if i == 0 || p.Len() < n {
			n = p.Len()
		}
	}
	return n
}
