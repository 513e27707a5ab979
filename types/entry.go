package types

// Draft is the mutable, unsubmitted state for the current calendar day.
// Exactly one draft is live at a time per user.
type Draft struct {
	Mood         int    `json:"mood"` // 1-10
	JournalEntry string `json:"journalEntry"`
	ActionTaken  string `json:"actionTaken"`
}

// DefaultDraft is the reset value used whenever a new calendar day begins
// with no carried-over in-progress state.
func DefaultDraft() Draft {
	return Draft{Mood: 5, JournalEntry: "", ActionTaken: ""}
}

// ClampMood forces the mood slider value into its 1-10 range.
func ClampMood(mood int) int {
	if mood < 1 {
		return 1
	}
	if mood > 10 {
		return 10
	}
	return mood
}

// DayEntry is an immutable historical record of one completed day. Past
// entries are never edited; corrections happen in future entries.
type DayEntry struct {
	Date           string  `json:"date"`
	Mood           int     `json:"mood"` // 1-10
	Tasks          []Task  `json:"tasks"`
	JournalEntry   string  `json:"journalEntry"`
	ActionTaken    string  `json:"actionTaken"`
	AIFeedback     *string `json:"aiFeedback"`
	NextDayPlan    []Task  `json:"nextDayPlan"`
	SelfWorthScore int     `json:"selfWorthScore"`
}

// UserDocument is the full persisted unit for one user: append-only history
// plus the live working state for the current day. LastTaskDate records the
// calendar day TodayTasks was last materialized for, which is how a resumed
// session is told apart from a day that needs a fresh plan.
type UserDocument struct {
	History      []DayEntry `json:"history"`
	TodayTasks   []Task     `json:"todayTasks"`
	Draft        Draft      `json:"draft"`
	LastTaskDate string     `json:"lastTaskDate"`
}

// LastEntry returns the most recent history entry, or nil when the history
// is empty.
func (d *UserDocument) LastEntry() *DayEntry {
	if d == nil || len(d.History) == 0 {
		return nil
	}
	return &d.History[len(d.History)-1]
}
