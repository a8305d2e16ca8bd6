// Package summary implements the summarize-and-record use case: text is sent
// to a summarizer, the trimmed summary is stored in the history together with
// the original input, and the history can be listed back.
package summary

import "errors"

// Sentinel errors for summary use case operations.
var (
	// ErrNotConfigured indicates that the service was built without a
	// summarizer or a history repository.
	ErrNotConfigured = errors.New("summary service not configured")
)
