package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/agglom/linkage"
	"github.com/katalvlaran/agglom/partition"
)

const namespace = "agglom"

// Recorder owns a registry with the merge-step series.
type Recorder struct {
	reg      *prometheus.Registry
	steps    *prometheus.CounterVec
	live     prometheus.Gauge
	distance prometheus.Histogram
}

// NewRecorder registers all series on a fresh registry. Every outcome label is
// pre-initialised so that zero counts are exported too.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merge_steps_total",
			Help:      "Consumed candidate pairs by union outcome.",
		}, []string{"outcome"}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_clusters",
			Help:      "Live clusters after the most recent merge step.",
		}),
		distance: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pair_distance",
			Help:      "Integer distance of consumed candidate pairs.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
	r.reg.MustRegister(r.steps, r.live, r.distance)
	for _, o := range []partition.Outcome{partition.Created, partition.Extended, partition.Merged, partition.Unchanged} {
		r.steps.WithLabelValues(o.String())
	}

	return r
}

// Observe records one merge step.
func (r *Recorder) Observe(s linkage.Step) {
	r.steps.WithLabelValues(s.Outcome.String()).Inc()
	r.live.Set(float64(s.Live))
	r.distance.Observe(float64(s.Pair.Dist))
}

// OnMerge is Observe with the linkage hook signature; it never fails.
func (r *Recorder) OnMerge(s linkage.Step) error {
	r.Observe(s)
	return nil
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteText gathers the registry and writes every family in the Prometheus
// text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
