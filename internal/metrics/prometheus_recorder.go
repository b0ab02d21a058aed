package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	searchDuration  prom.Histogram
	searchResults   prom.Histogram
	treeDuration    prom.Histogram
	treeSections    prom.Gauge
	pageResults     *prom.CounterVec
	contentChanges  prom.Counter
	requestDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		searchDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of search queries",
			Buckets:   prom.DefBuckets,
		}),
		searchResults: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of results returned per search query",
			Buckets:   prom.LinearBuckets(0, 1, 9),
		}),
		treeDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "tree_build_duration_seconds",
			Help:      "Duration of navigation tree builds",
			Buckets:   prom.DefBuckets,
		}),
		treeSections: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_sections",
			Help:      "Section count of the last navigation tree build",
		}),
		pageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_lookups_total",
			Help:      "Page lookups by outcome",
		}, []string{"result"}),
		contentChanges: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "content_changes_total",
			Help:      "Debounced content change batches seen by the watcher",
		}),
		requestDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route and status",
			Buckets:   prom.DefBuckets,
		}, []string{"route", "status"}),
	}
	reg.MustRegister(pr.searchDuration, pr.searchResults, pr.treeDuration, pr.treeSections,
		pr.pageResults, pr.contentChanges, pr.requestDuration)
	return pr
}

func (p *PrometheusRecorder) ObserveSearch(d time.Duration, results int) {
	if p == nil {
		return
	}
	p.searchDuration.Observe(d.Seconds())
	p.searchResults.Observe(float64(results))
}

func (p *PrometheusRecorder) ObserveTreeBuild(d time.Duration, sections int) {
	if p == nil {
		return
	}
	p.treeDuration.Observe(d.Seconds())
	p.treeSections.Set(float64(sections))
}

func (p *PrometheusRecorder) IncPageResult(result ResultLabel) {
	if p == nil {
		return
	}
	p.pageResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncContentChange() {
	if p == nil {
		return
	}
	p.contentChanges.Inc()
}

func (p *PrometheusRecorder) ObserveHTTPRequest(route string, status int, d time.Duration) {
	if p == nil {
		return
	}
	p.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}
