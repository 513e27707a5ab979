package types

type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	Success      bool   `json:"success"`
	Token        string `json:"token,omitempty"`
	Email        string `json:"email,omitempty"`
	ErrorMessage string `json:"error,omitempty"` // only set on failure
}

type LogoutResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
}

type DayResponse struct {
	Success           bool   `json:"success"`
	State             string `json:"state"`
	Tasks             []Task `json:"tasks"`
	Draft             Draft  `json:"draft"`
	HasSubmittedToday bool   `json:"has_submitted_today"`
	ErrorMessage      string `json:"error,omitempty"`
}

// UpdateDayRequest carries an autosave of in-progress edits. Nil fields are
// left untouched so the client can patch tasks and draft independently.
type UpdateDayRequest struct {
	Tasks *[]Task `json:"tasks,omitempty"`
	Draft *Draft  `json:"draft,omitempty"`
}

type UpdateDayResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
}

type SubmitResponse struct {
	Success      bool     `json:"success"`
	Entry        DayEntry `json:"entry,omitempty"`
	ErrorMessage string   `json:"error,omitempty"`
}

type HistoryResponse struct {
	Success      bool       `json:"success"`
	History      []DayEntry `json:"history"`
	Total        int        `json:"total"`
	ErrorMessage string     `json:"error,omitempty"`
}

type TrendPoint struct {
	Date      string `json:"date"`
	Mood      int    `json:"mood"`
	SelfWorth int    `json:"selfWorth"`
}

type Insights struct {
	TotalDays          int          `json:"total_days"`
	AverageMood        float64      `json:"average_mood"`
	AverageSelfWorth   float64      `json:"average_self_worth"`
	CurrentStreak      int          `json:"current_streak"`
	TaskCompletionRate float64      `json:"task_completion_rate"`
	Trend              []TrendPoint `json:"trend"`
}

type InsightsResponse struct {
	Success      bool     `json:"success"`
	Insights     Insights `json:"insights"`
	ErrorMessage string   `json:"error,omitempty"`
}
