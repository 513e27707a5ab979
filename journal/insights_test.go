package journal

import (
	"testing"

	"agencybuilder/coach/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsightsEmptyHistory(t *testing.T) {
	insights := BuildInsights(nil, "2024/1/5")

	assert.Equal(t, 0, insights.TotalDays)
	assert.Zero(t, insights.AverageMood)
	assert.Zero(t, insights.CurrentStreak)
	assert.Empty(t, insights.Trend)
}

func TestBuildInsightsAggregates(t *testing.T) {
	history := []types.DayEntry{
		{
			Date: "2024/1/3", Mood: 4, SelfWorthScore: 4,
			Tasks: []types.Task{{ID: "a", Text: "x", Completed: true}, {ID: "b", Text: "y"}},
		},
		{
			Date: "2024/1/4", Mood: 8, SelfWorthScore: 8,
			Tasks: []types.Task{{ID: "c", Text: "z", Completed: true}},
		},
	}

	insights := BuildInsights(history, "2024/1/5")

	assert.Equal(t, 2, insights.TotalDays)
	assert.InDelta(t, 6.0, insights.AverageMood, 0.001)
	assert.InDelta(t, 6.0, insights.AverageSelfWorth, 0.001)
	assert.InDelta(t, 2.0/3.0, insights.TaskCompletionRate, 0.001)

	require.Len(t, insights.Trend, 2)
	assert.Equal(t, types.TrendPoint{Date: "2024/1/3", Mood: 4, SelfWorth: 4}, insights.Trend[0])
	assert.Equal(t, types.TrendPoint{Date: "2024/1/4", Mood: 8, SelfWorth: 8}, insights.Trend[1])
}

func TestCurrentStreakEndingToday(t *testing.T) {
	history := []types.DayEntry{
		{Date: "2024/1/1"},
		{Date: "2024/1/3"},
		{Date: "2024/1/4"},
		{Date: "2024/1/5"},
	}

	insights := BuildInsights(history, "2024/1/5")
	assert.Equal(t, 3, insights.CurrentStreak, "gap on 2024/1/2 ends the streak")
}

func TestCurrentStreakAliveBeforeTodaySubmission(t *testing.T) {
	// Yesterday submitted, today not yet: the streak is still unbroken.
	history := []types.DayEntry{
		{Date: "2024/1/3"},
		{Date: "2024/1/4"},
	}

	insights := BuildInsights(history, "2024/1/5")
	assert.Equal(t, 2, insights.CurrentStreak)
}

func TestCurrentStreakBrokenByMissedDay(t *testing.T) {
	history := []types.DayEntry{
		{Date: "2024/1/1"},
		{Date: "2024/1/2"},
	}

	insights := BuildInsights(history, "2024/1/5")
	assert.Equal(t, 0, insights.CurrentStreak)
}
