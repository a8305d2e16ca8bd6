package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSummaryRequest(t *testing.T) {
	tests := []struct {
		name   string
		record func()
		status string
	}{
		{name: "success", record: func() { RecordSummaryResult(true) }, status: StatusSuccess},
		{name: "failure", record: func() { RecordSummaryResult(false) }, status: StatusFailure},
		{name: "invalid input", record: func() { RecordSummaryRequest(StatusInvalidInput) }, status: StatusInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(SummaryRequestsTotal.WithLabelValues(tt.status))

			tt.record()

			after := testutil.ToFloat64(SummaryRequestsTotal.WithLabelValues(tt.status))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestUpdateHistoryEntries(t *testing.T) {
	UpdateHistoryEntries(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(HistoryEntries))

	UpdateHistoryEntries(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(HistoryEntries))
}
