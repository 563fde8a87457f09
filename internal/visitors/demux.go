package visitors

import (
	"barsplit/core/engine"
	"barsplit/core/match"
	"barsplit/internal/diag"
	"barsplit/internal/output"
	"barsplit/internal/pipeline"
)

// Demux assigns each read to its best barcode. Every read yields exactly one
// result, matched or not.
type Demux struct {
	Engine   *engine.Engine
	Barcodes []*match.Pattern
	Metrics  *diag.Metrics
}

func (d Demux) Visit(r pipeline.Read) ([]output.Assigned, error) {
	a := d.Engine.Assign(r.ID, r.Seq, d.Barcodes)
	if d.Metrics != nil {
		d.Metrics.RecordRead()
		d.Metrics.RecordAssignment(a)
	}
	return []output.Assigned{{Assignment: a, SourceFile: r.Source}}, nil
}
