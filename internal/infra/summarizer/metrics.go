package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SummaryMetricsRecorder records summarizer metrics. It is an interface so
// tests can inject a recorder instead of the Prometheus one.
type SummaryMetricsRecorder interface {
	// RecordWordCount records the number of words in a generated summary.
	RecordWordCount(words int)

	// RecordLimitExceeded counts a summary at or above WordLimit words.
	RecordLimitExceeded()

	// RecordDuration records the time taken by one provider call, failed or not.
	RecordDuration(provider string, duration time.Duration)
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder using Prometheus metrics.
type PrometheusSummaryMetrics struct {
	wordHistogram     prometheus.Histogram
	exceededCounter   prometheus.Counter
	durationHistogram *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it doesn't exist
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateHistogramVec is getOrCreateHistogram for labelled histograms.
func getOrCreateHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		return promauto.NewHistogramVec(opts, labels)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it doesn't exist
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// NewPrometheusSummaryMetrics returns the process-wide Prometheus recorder.
// The metrics are registered once; later calls return the same instance.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			wordHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "summary_word_count",
				Help:    "Distribution of summary lengths in words",
				Buckets: []float64{10, 20, 30, 40, 50, 75, 100, 200},
			}),
			exceededCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "summary_word_limit_exceeded_total",
				Help: "Total number of summaries not shorter than the requested word limit",
			}),
			durationHistogram: getOrCreateHistogramVec(prometheus.HistogramOpts{
				Name:    "summarization_duration_seconds",
				Help:    "Time taken by one summarization provider call",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"provider"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordWordCount implements SummaryMetricsRecorder.RecordWordCount
func (p *PrometheusSummaryMetrics) RecordWordCount(words int) {
	p.wordHistogram.Observe(float64(words))
}

// RecordLimitExceeded implements SummaryMetricsRecorder.RecordLimitExceeded
func (p *PrometheusSummaryMetrics) RecordLimitExceeded() {
	p.exceededCounter.Inc()
}

// RecordDuration implements SummaryMetricsRecorder.RecordDuration
func (p *PrometheusSummaryMetrics) RecordDuration(provider string, duration time.Duration) {
	p.durationHistogram.WithLabelValues(provider).Observe(duration.Seconds())
}
