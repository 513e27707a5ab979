package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agencybuilder/coach/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geminiServer fakes the generateContent endpoint, wrapping text in the
// candidates/content/parts envelope.
func geminiServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "systemInstruction")
		assert.Contains(t, body, "generationConfig")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{
							{"text": text},
						},
					},
				},
			},
		})
	}))
}

func testCoach(server *httptest.Server) *GeminiCoach {
	return &GeminiCoach{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}
}

func sampleEntry() types.DayEntry {
	return types.DayEntry{
		Date: "2024/1/2", Mood: 6,
		Tasks:        []types.Task{{ID: "t1", Text: "speak up", Category: types.CategoryVoicing, Completed: true}},
		JournalEntry: "said what I meant",
	}
}

func TestGenerateFeedbackAndPlan(t *testing.T) {
	server := geminiServer(t, `{"feedback": "You held your ground.", "nextTasks": [
		{"text": "pick the movie", "category": "decision"},
		{"text": "note one win", "category": "totally-made-up"}
	]}`)
	defer server.Close()

	coach := testCoach(server)
	feedback, tasks, err := coach.GenerateFeedbackAndPlan(sampleEntry(), nil)
	require.NoError(t, err)

	assert.Equal(t, "You held your ground.", feedback)
	require.Len(t, tasks, 2)
	assert.True(t, strings.HasPrefix(tasks[0].ID, "generated-"))
	assert.Equal(t, types.CategoryDecision, tasks[0].Category)
	assert.Equal(t, types.CategoryReflection, tasks[1].Category, "unknown categories are coerced")
	assert.False(t, tasks[0].Completed)
	assert.Empty(t, tasks[0].UserResponse)
}

func TestGenerateFeedbackAndPlanDemoMode(t *testing.T) {
	coach := &GeminiCoach{APIKey: ""}

	feedback, tasks, err := coach.GenerateFeedbackAndPlan(sampleEntry(), nil)
	require.NoError(t, err)

	expectedFeedback, expectedTasks := DemoFeedbackAndPlan()
	assert.Equal(t, expectedFeedback, feedback)
	assert.Equal(t, expectedTasks, tasks)
}

func TestGenerateFeedbackAndPlanServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	coach := testCoach(server)
	_, _, err := coach.GenerateFeedbackAndPlan(sampleEntry(), nil)
	assert.Error(t, err)
}

func TestGenerateFeedbackAndPlanUnparseableText(t *testing.T) {
	server := geminiServer(t, "I refuse to answer in JSON today.")
	defer server.Close()

	coach := testCoach(server)
	_, _, err := coach.GenerateFeedbackAndPlan(sampleEntry(), nil)
	assert.Error(t, err)
}

func TestGenerateFeedbackAndPlanBlankFeedbackDefaulted(t *testing.T) {
	server := geminiServer(t, `{"feedback": "  ", "nextTasks": []}`)
	defer server.Close()

	coach := testCoach(server)
	feedback, tasks, err := coach.GenerateFeedbackAndPlan(sampleEntry(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, feedback)
	assert.Empty(t, tasks)
}

func TestGenerateInitialPlan(t *testing.T) {
	server := geminiServer(t, `{"tasks": [
		{"text": "ask what you want to drink", "category": "decision"},
		{"text": "", "category": "voicing"},
		{"text": "start one sentence with I think", "category": "voicing"},
		{"text": "extra", "category": "reflection"}
	]}`)
	defer server.Close()

	coach := testCoach(server)
	tasks, err := coach.GenerateInitialPlan()
	require.NoError(t, err)

	// Blank text is dropped, result capped at two.
	require.Len(t, tasks, 2)
	assert.True(t, strings.HasPrefix(tasks[0].ID, "init-"))
	assert.Equal(t, "ask what you want to drink", tasks[0].Text)
	assert.Equal(t, "start one sentence with I think", tasks[1].Text)
	for _, task := range tasks {
		assert.False(t, task.Completed)
	}
}

func TestGenerateInitialPlanNoKeyErrors(t *testing.T) {
	coach := &GeminiCoach{APIKey: ""}

	_, err := coach.GenerateInitialPlan()
	assert.Error(t, err, "callers substitute the fixed fallback plan")
}

func TestGenerateInitialPlanEmptyResponseErrors(t *testing.T) {
	server := geminiServer(t, `{"tasks": []}`)
	defer server.Close()

	coach := testCoach(server)
	_, err := coach.GenerateInitialPlan()
	assert.Error(t, err)
}

func TestBuildFeedbackPromptIncludesDayLog(t *testing.T) {
	entry := sampleEntry()
	entry.Tasks = append(entry.Tasks, types.Task{ID: "t2", Text: "decide alone", Category: types.CategoryDecision})

	prompt := BuildFeedbackPrompt(entry, []types.DayEntry{
		{Date: "2024/1/1", Mood: 4, SelfWorthScore: 4},
	})

	assert.Contains(t, prompt, "2024/1/2")
	assert.Contains(t, prompt, "COMPLETED")
	assert.Contains(t, prompt, "SKIPPED")
	assert.Contains(t, prompt, "said what I meant")
	assert.Contains(t, prompt, "RECENT DAYS")
	assert.Contains(t, prompt, "mood 4/10")
}
