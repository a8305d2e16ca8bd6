package summary

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"summary-api/internal/domain/entity"
	"summary-api/internal/handler/http/respond"
	"summary-api/internal/observability/logging"
	"summary-api/internal/observability/metrics"
	summaryUC "summary-api/internal/usecase/summary"
)

type ProcessHandler struct{ Svc summaryUC.Service }

// ServeHTTP テキスト要約
// @Summary      テキスト要約
// @Description  テキストを要約し、結果を履歴に保存します
// @Tags         summary
// @Accept       json
// @Produce      json
// @Param        request body ProcessRequest true "要約対象テキスト"
// @Success      200 {object} ProcessResponse
// @Failure      400 {object} respond.ErrorBody "Invalid input - 'text' field is required"
// @Failure      500 {object} respond.ErrorBody "Summarization failed"
// @Router       /process [post]
func (h ProcessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text, err := decodeText(r.Body)
	if err != nil {
		metrics.RecordSummaryRequest(metrics.StatusInvalidInput)
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Process(r.Context(), text)
	if err != nil {
		logging.WithRequestID(r.Context(), slog.Default()).ErrorContext(r.Context(), "process failed",
			slog.String("error", respond.SanitizeError(err)))
		respond.Error(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, ProcessResponse{ID: result.ID, Summary: result.Summary})
}

// decodeText reads a single JSON object with a string "text" field.
// Every other shape is reported as entity.ErrInvalidInput.
func decodeText(body io.Reader) (string, error) {
	if body == nil {
		return "", entity.ErrInvalidInput
	}
	dec := json.NewDecoder(body)

	var req ProcessRequest
	if err := dec.Decode(&req); err != nil {
		return "", entity.ErrInvalidInput
	}
	if req.Text == nil {
		return "", entity.ErrInvalidInput
	}
	// 末尾に余計なデータがある場合も不正入力
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return "", entity.ErrInvalidInput
	}
	return *req.Text, nil
}

func statusFor(err error) int {
	if errors.Is(err, entity.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
