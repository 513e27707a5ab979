package handlers

import (
	"encoding/json"
	"net/http"

	"agencybuilder/coach/config"
	"agencybuilder/coach/journal"
	"agencybuilder/coach/store"
	"agencybuilder/coach/types"
)

// GetDayHandler reconciles what today should look like: yesterday's queued
// plan, the user's in-progress session, the submitted read-only view, or a
// freshly generated plan. The materialized result is persisted before
// responding so the next load resumes instead of regenerating.
func (h *Handler) GetDayHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	today := h.today()

	doc, err := store.LoadUserDocument(h.Store, email)
	if err != nil {
		// A failed read falls through to first-time initialization rather
		// than blocking the journaling flow.
		config.Logger.Warn("Storage read failed, treating as new user: ", err)
		doc = nil
	}

	rec := journal.Reconcile(doc, today)
	if rec.PlanRequired {
		tasks, err := h.Coach.GenerateInitialPlan()
		if err != nil || len(tasks) == 0 {
			config.Logger.Warn("Initial plan generation failed, using fixed plan: ", err)
			tasks = journal.FallbackInitialPlan()
		}
		rec.Tasks = tasks
	}

	if doc == nil {
		doc = &types.UserDocument{}
	}
	doc.TodayTasks = rec.Tasks
	doc.Draft = rec.Draft
	doc.LastTaskDate = today

	if err := store.SaveUserDocument(h.Store, email, doc); err != nil {
		// The response is still served; worst case the next load regenerates.
		config.Logger.Error("Failed to persist day state:", err)
	}

	writeJSON(w, http.StatusOK, types.DayResponse{
		Success:           true,
		State:             rec.State.String(),
		Tasks:             rec.Tasks,
		Draft:             rec.Draft,
		HasSubmittedToday: journal.HasSubmittedToday(doc.History, today),
	})
}

// UpdateDayHandler autosaves in-progress edits: task completion toggles,
// per-task notes, and the draft fields. Rejected once today is submitted.
func (h *Handler) UpdateDayHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	today := h.today()

	var req types.UpdateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Tasks == nil && req.Draft == nil {
		writeError(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	doc, err := store.LoadUserDocument(h.Store, email)
	if err != nil {
		config.Logger.Error("Failed to load user document:", err)
		writeError(w, "Could not load journal", http.StatusInternalServerError)
		return
	}
	if doc == nil {
		doc = &types.UserDocument{}
	}

	if journal.HasSubmittedToday(doc.History, today) {
		writeError(w, "Today is already submitted", http.StatusConflict)
		return
	}

	if req.Tasks != nil {
		doc.TodayTasks = *req.Tasks
	}
	if req.Draft != nil {
		draft := *req.Draft
		draft.Mood = types.ClampMood(draft.Mood)
		doc.Draft = draft
	}
	doc.LastTaskDate = today

	if err := store.SaveUserDocument(h.Store, email, doc); err != nil {
		config.Logger.Error("Failed to save user document:", err)
		writeError(w, "Could not save journal", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.UpdateDayResponse{Success: true})
}

// SubmitDayHandler folds the autosaved draft and task snapshot into history
// and queues tomorrow's plan. Coach failures degrade to fixed fallback
// content inside the pipeline; only validation problems reach the client as
// errors.
func (h *Handler) SubmitDayHandler(w http.ResponseWriter, r *http.Request) {
	email, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	today := h.today()

	doc, err := store.LoadUserDocument(h.Store, email)
	if err != nil {
		config.Logger.Error("Failed to load user document:", err)
		writeError(w, "Could not load journal", http.StatusInternalServerError)
		return
	}
	if doc == nil {
		writeError(w, "Nothing to submit yet", http.StatusBadRequest)
		return
	}

	history, entry, err := journal.Submit(doc.Draft, doc.TodayTasks, doc.History, today, h.Coach)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc.History = history
	doc.LastTaskDate = today

	if err := store.SaveUserDocument(h.Store, email, doc); err != nil {
		config.Logger.Error("Failed to persist submission:", err)
		writeError(w, "Could not save submission", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.SubmitResponse{
		Success: true,
		Entry:   entry,
	})
}
