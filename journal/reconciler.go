package journal

import (
	"agencybuilder/coach/types"
)

// DayState names the situation a load found the user in. Modeling it as an
// explicit variant keeps the date comparisons in one place instead of
// re-derived ad hoc by every caller.
type DayState int

const (
	// StateNoDocument: first ever load for this identifier.
	StateNoDocument DayState = iota
	// StateFreshDay: a new day began with yesterday's plan queued; the plan
	// is promoted and the draft reset.
	StateFreshDay
	// StateResumedDay: the user already started today before this load;
	// their in-progress tasks and draft are restored unchanged.
	StateResumedDay
	// StateSubmittedToday: today's entry is already in history; the day is
	// display-only.
	StateSubmittedToday
	// StateNeedsPlan: a returning user on a day with no queued plan and no
	// started session; a fresh plan must be generated.
	StateNeedsPlan
)

func (s DayState) String() string {
	switch s {
	case StateNoDocument:
		return "no_document"
	case StateFreshDay:
		return "fresh_day"
	case StateResumedDay:
		return "resumed_day"
	case StateSubmittedToday:
		return "submitted_today"
	case StateNeedsPlan:
		return "needs_plan"
	}
	return "unknown"
}

// Reconciliation is the (tasks, draft) pair to present, plus whether the
// caller still has to ask the coach for an initial plan. Reconcile never
// talks to the coach itself; it stays a pure function of its inputs.
type Reconciliation struct {
	State        DayState
	Tasks        []types.Task
	Draft        types.Draft
	PlanRequired bool
}

// HasSubmittedToday is the single predicate deciding whether a day is
// read-only. Both the reconciler and the autosave/submit guards use it so
// the date-equality check is never duplicated.
func HasSubmittedToday(history []types.DayEntry, today string) bool {
	for _, entry := range history {
		if entry.Date == today {
			return true
		}
	}
	return false
}

// Reconcile decides what to show for today given the persisted document (nil
// when absent) and the current calendar day.
//
// Resume-in-progress always wins: a user who loads several times on the same
// day before submitting must see their own edits, never a regenerated plan.
// A draft from a prior day must never leak into a new day.
func Reconcile(doc *types.UserDocument, today string) Reconciliation {
	if doc == nil {
		return Reconciliation{
			State:        StateNoDocument,
			Draft:        types.DefaultDraft(),
			PlanRequired: true,
		}
	}

	last := doc.LastEntry()

	if last != nil && len(last.NextDayPlan) > 0 && last.Date != today {
		// A new day began with a plan queued yesterday.
		if doc.LastTaskDate == today && len(doc.TodayTasks) > 0 {
			// The user already started today's session after the rollover.
			return Reconciliation{
				State: StateResumedDay,
				Tasks: doc.TodayTasks,
				Draft: doc.Draft,
			}
		}
		// First load of the new day: promote the plan, reset the draft.
		return Reconciliation{
			State: StateFreshDay,
			Tasks: last.NextDayPlan,
			Draft: types.DefaultDraft(),
		}
	}

	if last != nil && last.Date == today {
		// Already submitted. Tasks stay visible; read-only rendering is the
		// presentation layer's call via HasSubmittedToday.
		return Reconciliation{
			State: StateSubmittedToday,
			Tasks: doc.TodayTasks,
			Draft: doc.Draft,
		}
	}

	if len(doc.TodayTasks) > 0 {
		return Reconciliation{
			State: StateResumedDay,
			Tasks: doc.TodayTasks,
			Draft: doc.Draft,
		}
	}

	return Reconciliation{
		State:        StateNeedsPlan,
		Draft:        doc.Draft,
		PlanRequired: true,
	}
}
