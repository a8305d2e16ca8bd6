package summary

import (
	"net/http"

	summaryUC "summary-api/internal/usecase/summary"
)

// Register registers the summary endpoints with the given mux.
// Other methods on these paths get 405 from the mux.
func Register(mux *http.ServeMux, svc summaryUC.Service) {
	mux.Handle("POST /process", ProcessHandler{svc})
	mux.Handle("GET /history", HistoryHandler{svc})
}
