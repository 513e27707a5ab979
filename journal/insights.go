package journal

import (
	"time"

	"agencybuilder/coach/types"
)

// BuildInsights aggregates the history into the dashboard numbers: mood and
// self-worth trend, averages, task completion rate and the current daily
// streak.
func BuildInsights(history []types.DayEntry, today string) types.Insights {
	insights := types.Insights{
		TotalDays: len(history),
		Trend:     make([]types.TrendPoint, 0, len(history)),
	}
	if len(history) == 0 {
		return insights
	}

	var moodSum, worthSum, tasksTotal, tasksDone int
	for _, entry := range history {
		moodSum += entry.Mood
		worthSum += entry.SelfWorthScore
		for _, task := range entry.Tasks {
			tasksTotal++
			if task.Completed {
				tasksDone++
			}
		}
		insights.Trend = append(insights.Trend, types.TrendPoint{
			Date:      entry.Date,
			Mood:      entry.Mood,
			SelfWorth: entry.SelfWorthScore,
		})
	}

	insights.AverageMood = float64(moodSum) / float64(len(history))
	insights.AverageSelfWorth = float64(worthSum) / float64(len(history))
	if tasksTotal > 0 {
		insights.TaskCompletionRate = float64(tasksDone) / float64(tasksTotal)
	}
	insights.CurrentStreak = currentStreak(history, today)
	return insights
}

// currentStreak counts consecutive submitted days ending today or yesterday
// (yesterday keeps an unbroken streak alive before today's submission).
// Entries whose dates do not parse with DateLayout contribute nothing.
func currentStreak(history []types.DayEntry, today string) int {
	todayDate, err := time.Parse(DateLayout, today)
	if err != nil {
		return 0
	}

	expected := todayDate
	i := len(history) - 1

	if i >= 0 && history[i].Date != today {
		expected = todayDate.AddDate(0, 0, -1)
	}

	streak := 0
	for ; i >= 0; i-- {
		if history[i].Date != expected.Format(DateLayout) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
