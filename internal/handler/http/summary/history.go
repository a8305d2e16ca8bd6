package summary

import (
	"log/slog"
	"net/http"

	"summary-api/internal/handler/http/respond"
	"summary-api/internal/observability/logging"
	summaryUC "summary-api/internal/usecase/summary"
)

type HistoryHandler struct{ Svc summaryUC.Service }

// ServeHTTP 要約履歴取得
// @Summary      要約履歴取得
// @Description  保存済みの要約を ID 昇順で返します。キーは ID の文字列です
// @Tags         summary
// @Produce      json
// @Success      200 {object} HistoryResponse
// @Failure      500 {object} respond.ErrorBody "Failed to read history"
// @Router       /history [get]
func (h HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	results, err := h.Svc.History(r.Context())
	if err != nil {
		logging.WithRequestID(r.Context(), slog.Default()).ErrorContext(r.Context(), "history failed",
			slog.String("error", respond.SanitizeError(err)))
		respond.Error(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, HistoryResponse{History: History(results)})
}
