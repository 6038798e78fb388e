package filter

import (
	"context"

	"github.com/asaidimu/go-metafilter/utils"
	"golang.org/x/sync/errgroup"
)

// Apply evaluates p against every element of in, in order, and stores the
// elements that pass in *out. Any previous contents of *out are discarded; a
// fresh slice with capacity len(in) is allocated so out never aliases in.
// It returns the number of matches. in is not modified and each element is
// evaluated exactly once.
func Apply[T any](in []T, p Predicate[T], out *[]T) int {
	*out = make([]T, 0, len(in))
	for _, record := range in {
		if p.Evaluate(record) {
			*out = append(*out, record)
		}
	}
	return len(*out)
}

// ApplyParallel is Apply spread over up to workers goroutines. The input is
// partitioned into contiguous spans, each span is filtered into its own
// buffer, and the buffers are concatenated in span order, so the result is
// identical to Apply. p must not be reconfigured while the pass runs; a Meta
// built with All satisfies this.
//
// If ctx is cancelled before every span has been filtered, *out is left empty
// and the context error is returned.
func ApplyParallel[T any](ctx context.Context, in []T, p Predicate[T], out *[]T, workers int) (int, error) {
	spans := utils.Partition(len(in), workers)
	if len(spans) <= 1 {
		if err := ctx.Err(); err != nil {
			*out = nil
			return 0, err
		}
		return Apply(in, p, out), nil
	}

	buffers := make([][]T, len(spans))
	g, gctx := errgroup.WithContext(ctx)
	for i, span := range spans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			Apply(in[span.Start:span.End], p, &buffers[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		*out = nil
		return 0, err
	}

	*out = make([]T, 0, len(in))
	for _, buf := range buffers {
		*out = append(*out, buf...)
	}
	return len(*out), nil
}
