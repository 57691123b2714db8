// Package pairs builds the all-pairs distance list over a []point.Point and
// turns it into the global merge order consumed by the linkage engine.
//
// What:
//
//   - Pair{I, J, Dist} records one unordered index pair (I < J) and the floor of
//     the Euclidean distance between the two points.
//   - Build enumerates all C(N,2) pairs in generation order
//     (0,1), (0,2), …, (0,N-1), (1,2), … .
//   - BuildParallel computes the same rows on independent workers and gathers
//     them in row order, so its result is identical to Build.
//   - Sort / NewOrder apply a stable ascending sort on Dist only. For equal
//     distances the generation order is preserved, which makes the order (and
//     every result derived from it) reproducible bit for bit.
//   - Order hands pairs out front to back. A consumed pair is never revisited.
//
// Distances are exact: the squared distance is accumulated in int64 and reduced
// with an integer square root, so no floating-point rounding reaches Dist.
//
// Complexity:
//
//   - Build:     O(N²) time and memory.
//   - Sort:      O(N² log N).
//   - Order.Next O(1).
package pairs
