package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"agencybuilder/coach/config"
	"agencybuilder/coach/store"
	"agencybuilder/coach/types"
)

// LoginHandler opens a session for a free-text identifier. No password: the
// email is only a namespace for the user's document.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		writeError(w, "Missing email", http.StatusBadRequest)
		return
	}

	token, err := store.IssueSession(h.Store, email)
	if err != nil {
		config.Logger.Error("Failed to issue session:", err)
		writeError(w, "Could not open session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.LoginResponse{
		Success: true,
		Token:   token,
		Email:   email,
	})
}

// LogoutHandler revokes the presented session. The user's journal document
// is left intact for the next login.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		writeError(w, "Missing Authorization header", http.StatusUnauthorized)
		return
	}

	if err := store.DeleteSession(h.Store, tokenString); err != nil {
		config.Logger.Warn("Failed to delete session:", err)
		writeError(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, types.LogoutResponse{Success: true})
}
