// Package partition tracks how point indexes 0..N-1 are grouped into disjoint
// clusters while pairs are merged one at a time.
//
// Two lookups are kept in step after every Union:
//
//   - owner:   point index → ClusterID (NoCluster while the point is unmerged)
//   - members: ClusterID   → roaring bitmap of point indexes
//
// Union applies an exhaustive case analysis:
//
//  1. neither point has a cluster  → a new cluster {a, b} is allocated (Created)
//  2. exactly one has a cluster    → the other point joins it          (Extended)
//  3. both have different clusters → the smaller cluster is absorbed into the
//     larger one, its id retired and its members re-pointed           (Merged)
//  4. both share a cluster         → nothing changes                   (Unchanged)
//
// On equal sizes the higher id is absorbed into the lower one. Because members
// always move from the smaller side, a point is re-pointed at most log2(N)
// times, so a full merge sequence costs O(N log N) re-pointing overall.
//
// Unmerged points are not clusters: they are counted by Unmerged and never
// appear in Clusters, Sizes or Groups.
//
// A Partition is owned by a single goroutine; it is not safe for concurrent use.
package partition
