package handlers

import (
	"net/http"

	"agencybuilder/coach/config"
	"agencybuilder/coach/journal"
	"agencybuilder/coach/store"
	"agencybuilder/coach/types"
)

func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	doc, err := store.LoadUserDocument(h.Store, email)
	if err != nil {
		config.Logger.Error("Failed to load user document:", err)
		writeError(w, "Could not load history", http.StatusInternalServerError)
		return
	}

	history := []types.DayEntry{}
	if doc != nil {
		history = doc.History
	}

	writeJSON(w, http.StatusOK, types.HistoryResponse{
		Success: true,
		History: history,
		Total:   len(history),
	})
}

// GetInsightsHandler serves the dashboard aggregates computed from history.
func (h *Handler) GetInsightsHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	doc, err := store.LoadUserDocument(h.Store, email)
	if err != nil {
		config.Logger.Error("Failed to load user document:", err)
		writeError(w, "Could not load insights", http.StatusInternalServerError)
		return
	}

	var history []types.DayEntry
	if doc != nil {
		history = doc.History
	}

	writeJSON(w, http.StatusOK, types.InsightsResponse{
		Success:  true,
		Insights: journal.BuildInsights(history, h.today()),
	})
}
