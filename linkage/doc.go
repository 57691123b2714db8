// Package linkage runs greedy single-linkage agglomerative clustering over a
// []point.Point and reduces the final partition to a single int64.
//
// What & Why
//
//   - Every unordered pair of points is a candidate merge. Candidates are
//     consumed in ascending integer distance (stable on ties, see package pairs)
//     and each one is applied to a partition.Partition, whether or not its
//     endpoints already share a cluster.
//   - This is Kruskal's loop with two different stopping rules, which is why the
//     engine can answer "what do the clusters look like after k merges?" and
//     "which link finally connects everything?" with the same machinery.
//
// Modes
//
//   - Bounded: consume at most Bound pairs (ExampleBound = 10 for example-scale
//     data, ProductionBound = 1000 otherwise), then return the product of the
//     sizes of the three largest clusters. Fewer clusters contribute fewer
//     factors; zero clusters yield 1. Unmerged points are not clusters.
//   - Unbounded: consume pairs until one cluster holds all N points, then return
//     pts[I].X * pts[J].X for the pair that completed it.
//
// No-op merges (both endpoints already together) still count as a consumed step.
//
// Error Conditions
//
//   - ErrInvalidMode:   Mode is neither Bounded nor Unbounded.
//   - ErrNegativeBound: Bounded mode with Bound < 0.
//   - ErrTooFewPoints:  Unbounded mode with fewer than two points.
//   - ErrNotCoalesced:  Unbounded mode ran out of pairs before full coalescence.
//   - ErrPairIndex:     RunPairs got a pair that does not name two input points.
//   - ctx.Err() when the context passed through WithContext is cancelled, or the
//     error returned by an OnMerge hook.
//
// Complexity: O(N² log N) time for building and sorting the pairs,
// O(N²) memory, O(N log N) for all merges.
//
// The merge loop is strictly sequential; only the distance build may run on
// several goroutines (WithWorkers), and it produces the same order either way.
package linkage
