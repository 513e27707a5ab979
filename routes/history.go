package routes

import (
	"net/http"

	"agencybuilder/coach/handlers"
)

// RegisterHistoryRoutes registers the dashboard/history routes
func RegisterHistoryRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /history", h.GetHistoryHandler)
	mux.HandleFunc("GET /insights", h.GetInsightsHandler)
}
