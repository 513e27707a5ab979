package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"agencybuilder/coach/config"
	"agencybuilder/coach/types"

	"github.com/google/uuid"
)

// Wire shapes of the two coach responses.
type planItem struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type feedbackResponse struct {
	Feedback  string     `json:"feedback"`
	NextTasks []planItem `json:"nextTasks"`
}

type initialPlanResponse struct {
	Tasks []planItem `json:"tasks"`
}

func categorySchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "STRING",
		"enum": []string{
			types.CategoryVoicing,
			types.CategoryDecision,
			types.CategorySelfWorth,
			types.CategoryReflection,
		},
	}
}

func taskListSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "ARRAY",
		"items": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"text":     map[string]interface{}{"type": "STRING"},
				"category": categorySchema(),
			},
		},
	}
}

// DemoFeedbackAndPlan is served when no API key is configured, so the app
// stays fully usable as a demo.
func DemoFeedbackAndPlan() (string, []types.Task) {
	feedback := "【演示模式】看起来您正在试用此应用。由于未配置 API Key，我是预设的回复。请告诉应用所有者在部署平台配置 API_KEY 以激活我！"
	tasks := []types.Task{
		{ID: "demo-1", Text: "在没有他人建议的情况下，独自决定今天的晚餐。", Category: types.CategoryDecision},
		{ID: "demo-2", Text: "对着镜子说出三个你欣赏自己的地方。", Category: types.CategorySelfWorth},
	}
	return feedback, tasks
}

// GenerateFeedbackAndPlan implements the feedback-and-plan contract: one
// paragraph of coaching feedback plus at most two tasks for tomorrow. Errors
// are returned to the caller, which substitutes fixed fallback content.
func (c *GeminiCoach) GenerateFeedbackAndPlan(entry types.DayEntry, history []types.DayEntry) (string, []types.Task, error) {
	if c.APIKey == "" {
		config.Logger.Warn("No GEMINI_API_KEY provided, returning demo feedback")
		feedback, tasks := DemoFeedbackAndPlan()
		return feedback, tasks, nil
	}

	schema := map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"feedback":  map[string]interface{}{"type": "STRING"},
			"nextTasks": taskListSchema(),
		},
	}

	text, err := c.generateContent(BuildFeedbackPrompt(entry, history), 1000, schema)
	if err != nil {
		return "", nil, err
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return "", nil, fmt.Errorf("unparseable feedback response: %v", err)
	}

	var parsed feedbackResponse
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return "", nil, fmt.Errorf("failed to parse feedback JSON: %v", err)
	}

	feedback := strings.TrimSpace(parsed.Feedback)
	if feedback == "" {
		feedback = "Good job tracking today. Keep focusing on your needs."
	}

	return feedback, materializeTasks(parsed.NextTasks, "generated"), nil
}

// GenerateInitialPlan implements the initial-plan contract for a brand new
// user: one or two low-pressure day-one tasks.
func (c *GeminiCoach) GenerateInitialPlan() ([]types.Task, error) {
	if c.APIKey == "" {
		config.Logger.Warn("No GEMINI_API_KEY provided, initial plan will use the fixed fallback")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	schema := map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"tasks": taskListSchema(),
		},
	}

	text, err := c.generateContent(BuildInitialPlanPrompt(), 500, schema)
	if err != nil {
		return nil, err
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("unparseable plan response: %v", err)
	}

	var parsed initialPlanResponse
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %v", err)
	}
	if len(parsed.Tasks) == 0 {
		return nil, fmt.Errorf("coach returned no tasks")
	}

	tasks := materializeTasks(parsed.Tasks, "init")
	if len(tasks) > 2 {
		tasks = tasks[:2]
	}
	return tasks, nil
}

// materializeTasks converts model plan items into fresh, uncompleted tasks.
// Items with empty text are dropped; unknown categories are coerced rather
// than rejected.
func materializeTasks(items []planItem, idPrefix string) []types.Task {
	tasks := make([]types.Task, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			continue
		}
		tasks = append(tasks, types.Task{
			ID:       fmt.Sprintf("%s-%s", idPrefix, uuid.NewString()),
			Text:     strings.TrimSpace(item.Text),
			Category: types.NormalizeCategory(item.Category),
		})
	}
	return tasks
}
