package kdtree

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// QueryKNN runs KNearest for each row of queryData, a flat row-major array
// with queryRows rows of s.Dim() columns. Rows are split into contiguous
// blocks across up to workers goroutines; 0 means runtime.NumCPU() and 1
// runs on the calling goroutine. results[i] answers row i.
//
// Cancelling ctx stops workers between rows. The first error wins and no
// results are returned with it.
func QueryKNN[T any](ctx context.Context, s Searcher[T], queryData []float64, queryRows, k, workers int) ([]*ResultSet[T], error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	return queryBatch(ctx, s, queryData, queryRows, workers, func(q []float64) (*ResultSet[T], error) {
		return s.KNearest(q, k)
	})
}

// QueryRadius runs WithinRadius for each row of queryData. See QueryKNN for
// the layout and worker semantics.
func QueryRadius[T any](ctx context.Context, s Searcher[T], queryData []float64, queryRows int, radius float64, workers int) ([]*ResultSet[T], error) {
	return queryBatch(ctx, s, queryData, queryRows, workers, func(q []float64) (*ResultSet[T], error) {
		return s.WithinRadius(q, radius)
	})
}

func queryBatch[T any](ctx context.Context, s Searcher[T], queryData []float64, queryRows, workers int, query func([]float64) (*ResultSet[T], error)) ([]*ResultSet[T], error) {
	dims := s.Dim()
	if queryRows < 0 || len(queryData) != queryRows*dims {
		return nil, &ErrDimensionMismatch{Expected: queryRows * dims, Actual: len(queryData)}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, queryRows)

	results := make([]*ResultSet[T], queryRows)
	run := func(start, end int) error {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			rs, err := query(queryData[i*dims : (i+1)*dims])
			if err != nil {
				return err
			}
			results[i] = rs
		}
		return nil
	}

	if workers <= 1 {
		if err := run(0, queryRows); err != nil {
			return nil, err
		}
		return results, nil
	}

	// Row ranges don't overlap, so each worker writes its own slots.
	g, ctx := errgroup.WithContext(ctx)
	rowsPerWorker := (queryRows + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		if start >= queryRows {
			break
		}
		end := min(start+rowsPerWorker, queryRows)
		g.Go(func() error { return run(start, end) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
