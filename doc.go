// Package agglom is greedy single-linkage agglomerative clustering for 3-D
// integer point sets: every pair of points is a candidate link, links are
// applied shortest first, and the run stops either after a fixed number of
// links or once every point sits in one cluster.
//
// Under the hood, everything is organized under these subpackages:
//
//	point/     — Point type, "x,y,z" parsing, plain/.gz/.zst/.lz4 loading
//	pairs/     — exact integer distances, all-pairs build (sequential or errgroup),
//	             stable merge order
//	partition/ — cluster registry (point → cluster, cluster → roaring bitmap)
//	linkage/   — the engine: Bounded and Unbounded termination + aggregates
//	metrics/   — Prometheus recorder usable as the linkage merge hook
//	config/    — validated CLI configuration with AGGLOM_* fallbacks
//	cmd/agglom — cobra CLI: run, order, version
//
// Quick example:
//
//	pts, _ := point.Load("inputs/day08/input.txt")
//	part1, _ := linkage.Solve(pts, false, false) // top-3 cluster sizes after 1000 links
//	part2, _ := linkage.Solve(pts, true, false)  // X·X of the link that joins everything
//
//	go install github.com/katalvlaran/agglom/cmd/agglom@latest
package agglom
