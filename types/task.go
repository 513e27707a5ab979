package types

import "strings"

// Task categories map to the four agency-building practice areas.
const (
	CategoryVoicing    = "voicing"
	CategoryDecision   = "decision"
	CategorySelfWorth  = "self-worth"
	CategoryReflection = "reflection"
)

type Task struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	Completed    bool   `json:"completed"`
	Category     string `json:"category"`
	UserResponse string `json:"userResponse,omitempty"` // user's note/answer for this task
}

// ValidCategory reports whether c is one of the four known task categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryVoicing, CategoryDecision, CategorySelfWorth, CategoryReflection:
		return true
	}
	return false
}

// NormalizeCategory coerces unknown or empty categories to "reflection" so a
// sloppy model response never produces an unrenderable task.
func NormalizeCategory(c string) string {
	c = strings.TrimSpace(strings.ToLower(c))
	if ValidCategory(c) {
		return c
	}
	return CategoryReflection
}

// Validate reports whether the task is well-formed enough to present.
func (t Task) Validate() bool {
	return strings.TrimSpace(t.ID) != "" && strings.TrimSpace(t.Text) != ""
}
