package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Summary request outcomes.
const (
	StatusSuccess      = "success"
	StatusInvalidInput = "invalid_input"
	StatusFailure      = "failure"
)

var (
	// SummaryRequestsTotal counts /process requests by outcome.
	SummaryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_requests_total",
			Help: "Total number of summary requests by outcome",
		},
		[]string{"status"}, // success, invalid_input, failure
	)

	// HistoryEntries tracks the number of results held in the history store.
	HistoryEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "summary_history_entries",
			Help: "Number of summaries held in the in-memory history",
		},
	)
)
