package linkage

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/agglom/pairs"
	"github.com/katalvlaran/agglom/partition"
	"github.com/katalvlaran/agglom/point"
)

// Run clusters pts according to opts and returns the aggregate.
//
// Steps:
//  1. Apply options and validate Mode, Bound and Workers.
//  2. Handle degenerate inputs explicitly: Bounded over N ≤ 1 yields Value 1
//     with zero clusters; Unbounded over N < 2 fails with ErrTooFewPoints.
//  3. Build all C(N,2) pairs (sequential or errgroup) and stable-sort them.
//  4. Consume pairs front to back into a fresh partition, one Union per pair,
//     firing OnMerge after each.
//  5. Bounded: stop after Bound pairs or on exhaustion, multiply the
//     TopClusters largest sizes. Unbounded: stop as soon as one cluster spans
//     all N points and multiply the X coordinates of that pair; exhaustion
//     fails with ErrNotCoalesced.
func Run(pts []point.Point, opts ...Option) (Result, error) {
	// 1. Collect options.
	o, err := collect(opts)
	if err != nil {
		return Result{}, err
	}

	// 2. Degenerate inputs never reach the merge loop.
	if res, done, err := degenerate(o, len(pts)); done {
		return res, err
	}

	// 3. Distance list.
	start := time.Now()
	var ps []pairs.Pair
	if o.Workers > 1 {
		ps, err = pairs.BuildParallel(o.Ctx, pts, o.Workers)
		if err != nil {
			return Result{}, fmt.Errorf("linkage: build pairs: %w", err)
		}
	} else {
		ps = pairs.Build(pts)
	}
	o.Logger.Debug("distance list built",
		zap.Int("pairs", len(ps)),
		zap.Int("workers", o.Workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return consume(o, pts, ps)
}

// RunPairs is Run over a caller-supplied candidate list instead of the full
// C(N,2) set, e.g. pairs prefiltered by distance. ps is sorted into merge order
// (stably, on a copy); every index must lie in [0, len(pts)) with I != J.
// With an incomplete list Unbounded mode can fail with ErrNotCoalesced.
//
// Errors: as Run, plus ErrPairIndex.
func RunPairs(pts []point.Point, ps []pairs.Pair, opts ...Option) (Result, error) {
	o, err := collect(opts)
	if err != nil {
		return Result{}, err
	}
	if res, done, err := degenerate(o, len(pts)); done {
		return res, err
	}
	for _, p := range ps {
		if p.I < 0 || p.J < 0 || p.I >= len(pts) || p.J >= len(pts) || p.I == p.J {
			return Result{}, fmt.Errorf("%w: %v over %d points", ErrPairIndex, p, len(pts))
		}
	}

	return consume(o, pts, ps)
}

// collect applies opts over DefaultOptions and validates the result.
func collect(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Mode {
	case Bounded:
		if o.Bound < 0 {
			return o, fmt.Errorf("%w: %d", ErrNegativeBound, o.Bound)
		}
	case Unbounded:
	default:
		return o, fmt.Errorf("%w: %d", ErrInvalidMode, int(o.Mode))
	}
	if o.Workers < 0 {
		return o, pairs.ErrNegativeWorkers
	}
	o.Logger = o.Logger.With(zap.Stringer("mode", o.Mode))

	return o, nil
}

// degenerate resolves inputs with no usable pair. done is false when the
// regular merge loop should run.
func degenerate(o Options, n int) (res Result, done bool, err error) {
	switch {
	case o.Mode == Unbounded && n < 2:
		return Result{}, true, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	case o.Mode == Bounded && n <= 1:
		o.Logger.Debug("no candidate pairs, empty partition", zap.Int("points", n))
		return Result{Mode: Bounded, Value: 1, Top: []int{}}, true, nil
	default:
		return Result{}, false, nil
	}
}

// consume sorts ps into the global merge order and feeds it, one pair at a
// time, into a fresh partition over pts until the mode's stopping rule fires.
func consume(o Options, pts []point.Point, ps []pairs.Pair) (Result, error) {
	if err := o.Ctx.Err(); err != nil {
		return Result{}, err
	}
	n := len(pts)
	order := pairs.NewOrder(ps)
	part := partition.New(n)
	res := Result{Mode: o.Mode}

	for {
		if o.Mode == Bounded && order.Consumed() >= o.Bound {
			break
		}
		pr, ok := order.Next()
		if !ok {
			break
		}
		outcome := part.Union(pr.I, pr.J)
		res.Steps = order.Consumed()
		res.Last = pr

		if o.OnMerge != nil {
			step := Step{Index: res.Steps, Pair: pr, Outcome: outcome, Live: part.Len()}
			if err := o.OnMerge(step); err != nil {
				return Result{}, fmt.Errorf("linkage: merge hook at step %d: %w", res.Steps, err)
			}
		}

		// Full coalescence ends an Unbounded run on this very pair.
		if o.Mode == Unbounded && part.Complete() {
			res.Value = pts[pr.I].X * pts[pr.J].X
			res.Clusters = 1
			res.Largest = n
			o.Logger.Info("coalesced",
				zap.Int("points", n),
				zap.Int("steps", res.Steps),
				zap.Stringer("pair", pr),
				zap.Int64("value", res.Value),
			)
			return res, nil
		}

		if res.Steps%ctxCheckEvery == 0 {
			if err := o.Ctx.Err(); err != nil {
				return Result{}, err
			}
		}
	}

	if o.Mode == Unbounded {
		return Result{}, fmt.Errorf("%w: %d pairs consumed, %d clusters and %d unmerged points remain",
			ErrNotCoalesced, res.Steps, part.Len(), part.Unmerged())
	}

	sizes := part.Sizes()
	res.Clusters = len(sizes)
	res.Largest = part.Largest()
	res.Top = topSizes(sizes, TopClusters)
	res.Value = TopProduct(sizes, TopClusters)
	o.Logger.Info("bound reached",
		zap.Int("points", n),
		zap.Int("steps", res.Steps),
		zap.Int("clusters", res.Clusters),
		zap.Ints("top", res.Top),
		zap.Int64("value", res.Value),
	)

	return res, nil
}

// Solve is the two-flag entry point: unbounded selects the policy and example
// selects the Bounded step bound (ExampleBound or ProductionBound).
func Solve(pts []point.Point, unbounded, example bool, opts ...Option) (int64, error) {
	mode := Bounded
	if unbounded {
		mode = Unbounded
	}
	all := append([]Option{WithMode(mode), WithExample(example)}, opts...)
	res, err := Run(pts, all...)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// LargestClustersProduct runs Bounded mode with the given bound and returns the
// product of the three largest cluster sizes.
func LargestClustersProduct(pts []point.Point, bound int) (int64, error) {
	res, err := Run(pts, WithMode(Bounded), WithBound(bound))
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// CoalescenceProduct runs Unbounded mode and returns the product of the X
// coordinates of the pair that joins the last two clusters.
func CoalescenceProduct(pts []point.Point) (int64, error) {
	res, err := Run(pts, WithMode(Unbounded))
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}
