package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"barsplit/internal/app"
)

func TestCanceledRunExits130(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "big.fq")
	rec := fastqRecord("r", strings.Repeat("ACGT", 50))
	if err := os.WriteFile(fn, []byte(strings.Repeat(rec, 2000)), 0o644); err != nil {
		t.Fatalf("write fastq: %v", err)
	}
	bc := barcodes(t)

	// Already canceled before the scan starts.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"demux", "-b", bc, "-q", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
