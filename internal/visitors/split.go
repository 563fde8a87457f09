package visitors

import (
	"context"

	"barsplit/core/engine"
	"barsplit/internal/diag"
	"barsplit/internal/output"
	"barsplit/internal/pipeline"
)

// Split cuts each read into the segments its adapters bound. Reads with no
// usable adapter pair yield nothing.
type Split struct {
	Engine  *engine.Engine
	Table   engine.AdapterTable
	Metrics *diag.Metrics
	Log     *diag.Logger
}

func (s Split) Visit(r pipeline.Read) ([]output.SegmentRecord, error) {
	res := s.Engine.Split(r.ID, r.Seq, s.Table)
	if s.Metrics != nil {
		s.Metrics.RecordRead()
		s.Metrics.RecordSplit(res)
	}
	if res.Dropped > 0 && s.Log != nil {
		s.Log.LogDropped(context.Background(), r.ID, res.Dropped)
	}
	if len(res.Segments) == 0 {
		return nil, nil
	}
	out := make([]output.SegmentRecord, len(res.Segments))
	for i, seg := range res.Segments {
		out[i] = output.SliceSegment(seg, r.Seq, r.Qual, r.Source)
	}
	return out, nil
}
