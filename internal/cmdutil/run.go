package cmdutil

import (
	"context"

	"barsplit/internal/pipeline"
)

// RunStream runs the read pipeline, applies a visitor to every read, and
// streams each result via send. It returns the number of results sent and
// the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	paths []string,
	visit func(pipeline.Read) ([]T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachRead(ctx, cfg, paths, func(r pipeline.Read) error {
		outs, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		for _, out := range outs {
			if err := send(out); err != nil {
				return err
			}
			total++
		}
		return nil
	})
	return total, err
}
