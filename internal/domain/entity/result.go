// Package entity defines the core domain entities of the summary service.
// StoredResult is the only entity: one processed input together with the
// summary the language model produced for it.
package entity

import (
	"strings"
	"time"
)

// StoredResult represents one processed text and its summary.
// IDs are positive and assigned by the history store in insertion order.
type StoredResult struct {
	ID        int64
	InputText string
	Summary   string
	CreatedAt time.Time
}

// NewStoredResult builds a result that has not been assigned an ID yet.
// The summary is trimmed of surrounding whitespace; the input is kept verbatim.
func NewStoredResult(inputText, summary string) *StoredResult {
	return &StoredResult{
		InputText: inputText,
		Summary:   strings.TrimSpace(summary),
	}
}

// Validate checks the invariants a stored result must hold once persisted.
func (r *StoredResult) Validate() error {
	if r.ID <= 0 {
		return &ValidationError{Field: "id", Message: "must be positive"}
	}
	return nil
}
