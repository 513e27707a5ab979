package routes

import (
	"net/http"

	"agencybuilder/coach/handlers"
)

// RegisterDayRoutes registers the daily journaling routes
func RegisterDayRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /day", h.GetDayHandler)
	mux.HandleFunc("PATCH /day", h.UpdateDayHandler)
	mux.HandleFunc("POST /day/submit", h.SubmitDayHandler)
}
