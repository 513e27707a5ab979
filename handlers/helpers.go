package handlers

import (
	"encoding/json"
	"net/http"

	"agencybuilder/coach/config"
	"agencybuilder/coach/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	resp := struct {
		Success      bool   `json:"success"`
		ErrorMessage string `json:"error"`
	}{
		Success:      false,
		ErrorMessage: message,
	}
	writeJSON(w, status, resp)
}

// requireUser resolves the request's session to a user identifier, writing
// the 401 itself when the session is missing or revoked.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, err := store.SessionFromRequest(h.Store, r)
	if err != nil {
		config.Logger.Warn("Rejected unauthenticated request: ", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return email, true
}
