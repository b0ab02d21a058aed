// Package metrics provides observability hooks for the content pipeline.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	builder := nav.NewBuilder(store) // NoopRecorder
//	builder := nav.NewBuilder(store, nav.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the given registry, which
// HTTPHandler then serves.
package metrics
