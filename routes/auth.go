package routes

import (
	"net/http"

	"agencybuilder/coach/handlers"
)

// RegisterAuthRoutes registers the login gate routes
func RegisterAuthRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /auth/login", h.LoginHandler)
	mux.HandleFunc("POST /auth/logout", h.LogoutHandler)
}
