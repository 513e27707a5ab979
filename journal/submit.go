package journal

import (
	"fmt"
	"strings"

	"agencybuilder/coach/config"
	"agencybuilder/coach/types"
)

// MaxNextDayTasks caps the queued plan regardless of how many tasks the
// model returns.
const MaxNextDayTasks = 2

// Coach is the external feedback-and-plan contract the submission pipeline
// consumes. Implementations may fail; the pipeline recovers locally.
type Coach interface {
	GenerateInitialPlan() ([]types.Task, error)
	GenerateFeedbackAndPlan(entry types.DayEntry, history []types.DayEntry) (string, []types.Task, error)
}

// Submit folds a completed day into history. It builds the entry from the
// draft and task snapshot, asks the coach for feedback and tomorrow's plan,
// and appends the result. The coach call degrading to fixed fallback content
// is the only effect of a coach failure; submission itself never fails from
// a transient AI error.
//
// The returned slice is a new history; existing entries are never edited or
// reordered. Persistence is the caller's responsibility.
func Submit(draft types.Draft, tasks []types.Task, history []types.DayEntry, today string, coach Coach) ([]types.DayEntry, types.DayEntry, error) {
	if strings.TrimSpace(draft.JournalEntry) == "" {
		return history, types.DayEntry{}, fmt.Errorf("journal entry is empty")
	}
	if HasSubmittedToday(history, today) {
		return history, types.DayEntry{}, fmt.Errorf("already submitted for %s", today)
	}

	entry := types.DayEntry{
		Date:           today,
		Mood:           types.ClampMood(draft.Mood),
		Tasks:          tasks,
		JournalEntry:   draft.JournalEntry,
		ActionTaken:    draft.ActionTaken,
		SelfWorthScore: types.ClampMood(draft.Mood),
	}

	feedback, nextTasks, err := coach.GenerateFeedbackAndPlan(entry, history)
	if err != nil {
		config.Logger.Warn("Coach unavailable on submission, using fallback content: ", err)
		feedback = FallbackFeedback
		nextTasks = FallbackNextPlan()
	}

	if len(nextTasks) > MaxNextDayTasks {
		nextTasks = nextTasks[:MaxNextDayTasks]
	}

	entry.AIFeedback = &feedback
	entry.NextDayPlan = nextTasks

	updated := make([]types.DayEntry, 0, len(history)+1)
	updated = append(updated, history...)
	updated = append(updated, entry)
	return updated, entry, nil
}
