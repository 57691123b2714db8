package pairs

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/agglom/point"
)

// Build returns every unordered pair (i, j), i < j, over pts together with its
// distance, in generation order. Fewer than two points yield an empty slice.
//
// Complexity: O(N²) time and memory.
func Build(pts []point.Point) []Pair {
	out := make([]Pair, 0, Count(len(pts)))
	for i := 0; i < len(pts)-1; i++ {
		out = appendRow(out, pts, i)
	}

	return out
}

// BuildParallel is Build with rows computed concurrently.
//
// Each row i (all pairs (i, j), j > i) is produced by one errgroup task into its
// own slot, so tasks share no mutable state; rows are concatenated in order
// afterwards, making the result identical to Build. workers caps the number of
// concurrent tasks; 0 means runtime.GOMAXPROCS(0).
//
// Errors: ErrNegativeWorkers, or ctx.Err() if the context is cancelled.
func BuildParallel(ctx context.Context, pts []point.Point, workers int) ([]Pair, error) {
	if workers < 0 {
		return nil, ErrNegativeWorkers
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := len(pts)
	if n < 2 {
		return []Pair{}, nil
	}

	rows := make([][]Pair, n-1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = appendRow(make([]Pair, 0, n-1-i), pts, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Pair, 0, Count(n))
	for _, row := range rows {
		out = append(out, row...)
	}

	return out, nil
}

// appendRow appends the pairs (i, j) for j in (i, len(pts)) to dst.
func appendRow(dst []Pair, pts []point.Point, i int) []Pair {
	a := pts[i]
	for j := i + 1; j < len(pts); j++ {
		dst = append(dst, Pair{I: i, J: j, Dist: Distance(a, pts[j])})
	}

	return dst
}
