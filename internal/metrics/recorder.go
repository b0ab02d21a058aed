package metrics

import "time"

// ResultLabel enumerates page lookup outcomes for counters.
type ResultLabel string

const (
	ResultFound    ResultLabel = "found"
	ResultNotFound ResultLabel = "not_found"
	ResultError    ResultLabel = "error"
)

// Recorder defines observability hooks for content queries. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveSearch(d time.Duration, results int)
	ObserveTreeBuild(d time.Duration, sections int)
	IncPageResult(result ResultLabel)
	IncContentChange()
	ObserveHTTPRequest(route string, status int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveSearch(time.Duration, int)                {}
func (NoopRecorder) ObserveTreeBuild(time.Duration, int)             {}
func (NoopRecorder) IncPageResult(ResultLabel)                       {}
func (NoopRecorder) IncContentChange()                               {}
func (NoopRecorder) ObserveHTTPRequest(string, int, time.Duration)   {}
