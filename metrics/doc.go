// Package metrics records linkage merge steps into a private Prometheus
// registry and dumps it in the text exposition format.
//
// A Recorder's OnMerge method has the linkage.WithOnMerge hook signature:
//
//	rec := metrics.NewRecorder()
//	res, err := linkage.Run(pts, linkage.WithOnMerge(rec.OnMerge))
//	_ = rec.WriteText(os.Stderr)
//
// Exposed series:
//
//   - agglom_merge_steps_total{outcome}: consumed pairs per Union outcome.
//   - agglom_live_clusters:              live clusters after the last step.
//   - agglom_pair_distance:              histogram of consumed pair distances.
package metrics
