package metrics

// RecordSummaryRequest counts one /process request with the given outcome.
// Status should be one of StatusSuccess, StatusInvalidInput or StatusFailure.
func RecordSummaryRequest(status string) {
	SummaryRequestsTotal.WithLabelValues(status).Inc()
}

// RecordSummaryResult counts a request that reached the summarizer.
func RecordSummaryResult(success bool) {
	status := StatusSuccess
	if !success {
		status = StatusFailure
	}
	RecordSummaryRequest(status)
}

// UpdateHistoryEntries sets the history size gauge. It should be called after
// every insert so the gauge follows the store.
func UpdateHistoryEntries(count int) {
	HistoryEntries.Set(float64(count))
}
