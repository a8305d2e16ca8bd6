// Package summary provides the HTTP handlers for POST /process and GET /history.
package summary

import (
	"bytes"
	"encoding/json"
	"strconv"

	"summary-api/internal/domain/entity"
)

// ProcessRequest is the body of POST /process. Text is a pointer so that a
// missing field and an explicit null can be told apart from "".
type ProcessRequest struct {
	Text *string `json:"text" example:"Paris is the capital and most populous city of France."`
}

// ProcessResponse is the body of a successful POST /process.
type ProcessResponse struct {
	ID      int64  `json:"id" example:"1"`
	Summary string `json:"summary" example:"Paris is France's capital and largest city."`
}

// HistoryEntry is one stored result as exposed by GET /history.
type HistoryEntry struct {
	InputText string `json:"input_text" example:"Paris is the capital and most populous city of France."`
	Summary   string `json:"summary" example:"Paris is France's capital and largest city."`
}

// HistoryResponse is the body of GET /history.
type HistoryResponse struct {
	History History `json:"history"`
}

// History is an id-keyed JSON object whose keys are written in ascending id
// order ("1", "2", ..., "10") rather than the lexical order encoding/json
// uses for maps.
type History []*entity.StoredResult

// MarshalJSON implements json.Marshaler.
func (h History) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range h {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.FormatInt(r.ID, 10))
		buf.WriteString(`":`)

		entry, err := json.Marshal(HistoryEntry{InputText: r.InputText, Summary: r.Summary})
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
