package handlers

import (
	"agencybuilder/coach/journal"
	"agencybuilder/coach/store"
)

// Handler bundles the two external collaborators every route needs: the
// persistent store and the coach. Now is overridable so tests can pin the
// calendar day.
type Handler struct {
	Store store.KV
	Coach journal.Coach
	Now   func() string
}

func New(kv store.KV, coach journal.Coach) *Handler {
	return &Handler{
		Store: kv,
		Coach: coach,
		Now:   journal.Today,
	}
}

func (h *Handler) today() string {
	if h.Now != nil {
		return h.Now()
	}
	return journal.Today()
}
