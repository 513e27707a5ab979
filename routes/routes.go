package routes

import (
	"net/http"

	"agencybuilder/coach/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterAuthRoutes(mux, h)
	RegisterDayRoutes(mux, h)
	RegisterHistoryRoutes(mux, h)
}
