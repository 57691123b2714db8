package linkage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/agglom/pairs"
	"github.com/katalvlaran/agglom/partition"
)

var (
	// ErrInvalidMode indicates an unknown Mode value.
	ErrInvalidMode = errors.New("linkage: invalid mode")
	// ErrNegativeBound indicates a Bounded run with a negative step bound.
	ErrNegativeBound = errors.New("linkage: bound must be non-negative")
	// ErrTooFewPoints indicates an Unbounded run over fewer than two points,
	// where no pair exists that could complete coalescence.
	ErrTooFewPoints = errors.New("linkage: at least two points are required")
	// ErrNotCoalesced indicates the merge order was exhausted before a single
	// cluster spanned every point.
	ErrNotCoalesced = errors.New("linkage: pairs exhausted before full coalescence")
	// ErrPairIndex indicates a supplied pair that does not reference two
	// distinct points of the input.
	ErrPairIndex = errors.New("linkage: pair index out of range")
)

// Step bounds for Bounded mode.
const (
	ExampleBound    = 10
	ProductionBound = 1000
)

// TopClusters is how many of the largest clusters the Bounded aggregate multiplies.
const TopClusters = 3

// ctxCheckEvery is how many merge steps pass between context checks.
const ctxCheckEvery = 4096

// BoundFor maps the example-scale flag to its step bound.
func BoundFor(example bool) int {
	if example {
		return ExampleBound
	}

	return ProductionBound
}

// Mode selects the termination and aggregation policy.
type Mode int

const (
	// Bounded stops after a fixed number of consumed pairs.
	Bounded Mode = iota
	// Unbounded stops when all points form one cluster.
	Unbounded
)

// String returns "bounded" or "unbounded".
func (m Mode) String() string {
	switch m {
	case Bounded:
		return "bounded"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "bounded":
		return Bounded, nil
	case "unbounded":
		return Unbounded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Step describes one consumed pair, as passed to the OnMerge hook.
type Step struct {
	// Index is the 1-based position of Pair in the merge order.
	Index int
	// Pair is the consumed candidate.
	Pair pairs.Pair
	// Outcome reports which Union case applied.
	Outcome partition.Outcome
	// Live is the number of live clusters after the union.
	Live int
}

// Options configures a Run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Mode selects Bounded (default) or Unbounded termination.
	Mode Mode

	// Bound is the maximum number of pairs consumed in Bounded mode.
	// Ignored by Unbounded. Defaults to ProductionBound.
	Bound int

	// Workers > 1 builds the distance list on that many goroutines.
	// 0 or 1 builds it sequentially. The merge loop is always sequential.
	Workers int

	// Logger receives debug and summary records; defaults to zap.NewNop().
	Logger *zap.Logger

	// OnMerge, if non-nil, is invoked after every consumed pair.
	// Returning an error aborts the run with that error.
	OnMerge func(Step) error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options for a Bounded run at ProductionBound with a
// background context, sequential build, no hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Mode:    Bounded,
		Bound:   ProductionBound,
		Workers: 1,
		Logger:  zap.NewNop(),
		OnMerge: nil,
	}
}

// WithContext sets the context checked during the build and the merge loop.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the termination policy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithBound sets the Bounded-mode step bound.
func WithBound(n int) Option {
	return func(o *Options) {
		o.Bound = n
	}
}

// WithExample sets the bound to ExampleBound when example is true and to
// ProductionBound otherwise.
func WithExample(example bool) Option {
	return func(o *Options) {
		o.Bound = BoundFor(example)
	}
}

// WithWorkers sets the number of goroutines used to build the distance list.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger installs a zap logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnMerge installs fn as the per-step hook.
func WithOnMerge(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnMerge = fn
	}
}

// Result is the outcome of a Run.
type Result struct {
	// Mode is the policy that produced Value.
	Mode Mode
	// Value is the aggregate: the top-cluster size product (Bounded) or the
	// X-coordinate product of the completing pair (Unbounded).
	Value int64
	// Steps is the number of pairs consumed.
	Steps int
	// Clusters is the number of live clusters when the run stopped.
	Clusters int
	// Largest is the size of the biggest cluster when the run stopped.
	Largest int
	// Top holds the cluster sizes multiplied into Value in Bounded mode, largest first.
	Top []int
	// Last is the last consumed pair; zero when Steps == 0.
	Last pairs.Pair
}
