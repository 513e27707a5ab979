package llm

import (
	"fmt"
	"strings"

	"agencybuilder/coach/types"
)

// AppConcept is the coaching philosophy every prompt is grounded in.
const AppConcept = `
核心概念：主体性 (Agency)
定义：我的感受和想法是最重要的；我知道我要什么；我是我人生的舵手。
对立面：自私 (损人利己) vs 主体性 (利己不损人)。
弱主体性表现：觉得自己无价值、无法说出真实想法、害怕外部评价、迎合他人、缺乏自我觉察。
增强方法：
1. 重新认识自己：找到内在价值锚点，练习发声。
2. 增加自我价值点：建立其他维度的价值。
3. 打破对“外部评判”的恐惧：区分观点与事实，消解权威（父母/恋人）的光环。
`

// SystemInstruction grounds the model in the coaching philosophy for every
// call.
var SystemInstruction = fmt.Sprintf(`
You are a supportive, insightful, and firm psychological coach helping the user build their "Subjectivity" (Agency/Self-hood).
Base your advice strictly on these concepts:
%s

Your Goal:
1. Validate the user's feelings but gently push them towards agency.
2. Help them distinguish between "facts" and "external opinions".
3. Assign small, concrete tasks to practice "speaking up", "making choices", or "de-glamorizing authority".
4. Adjust difficulty based on their previous journal entry.

Tone: Empathetic, encouraging, but rational and focused on self-empowerment.
`, AppConcept)

// maxHistoryDigest caps how many past days are summarized into the feedback
// prompt.
const maxHistoryDigest = 5

// BuildFeedbackPrompt renders the day's log plus a short digest of recent
// history into the feedback-and-plan prompt.
func BuildFeedbackPrompt(entry types.DayEntry, history []types.DayEntry) string {
	var taskLines strings.Builder
	for _, t := range entry.Tasks {
		status := "SKIPPED"
		if t.Completed {
			status = "COMPLETED"
		}
		note := t.UserResponse
		if note == "" {
			note = "No details provided"
		}
		taskLines.WriteString(fmt.Sprintf("      - Task: %q [%s]\n        - User Note: %q\n", t.Text, status, note))
	}

	sections := []string{fmt.Sprintf(`User's Log for Today (%s):
    - Mood (1-10): %d
    - Tasks & Outcomes:
%s    - Journal (Thoughts): %q
    - Specific Action Taken for Self: %q`,
		entry.Date, entry.Mood, taskLines.String(), entry.JournalEntry, entry.ActionTaken)}

	if digest := historyDigest(history); digest != "" {
		sections = append(sections, digest)
	}

	sections = append(sections, `Based on this, provide:
    1. A paragraph of feedback analyzing their "Subjectivity" today. Did they fall into the trap of people-pleasing? Did they successfully voice a need?
    2. A list of 1-2 specific, actionable tasks for TOMORROW to strengthen their agency. No more than 2 tasks.
       - Focus on the area they seem weakest in (e.g., if they hid their thoughts, give a task to speak up).
       - Keep tasks simple but meaningful.

    Return JSON.`)

	return strings.Join(sections, "\n\n")
}

// historyDigest compresses recent days into a few lines of trend context.
func historyDigest(history []types.DayEntry) string {
	if len(history) == 0 {
		return ""
	}
	recent := history
	if len(recent) > maxHistoryDigest {
		recent = recent[len(recent)-maxHistoryDigest:]
	}

	digest := "RECENT DAYS (oldest first):\n"
	for _, entry := range recent {
		completed := 0
		for _, t := range entry.Tasks {
			if t.Completed {
				completed++
			}
		}
		digest += fmt.Sprintf("    - %s: mood %d/10, self-worth %d/10, %d/%d tasks done\n",
			entry.Date, entry.Mood, entry.SelfWorthScore, completed, len(entry.Tasks))
	}
	return digest
}

// BuildInitialPlanPrompt is the day-one prompt for a brand new user.
func BuildInitialPlanPrompt() string {
	return `The user is starting their journey to build Subjectivity.
Generate 2 simple, low-pressure tasks for Day 1 to help them start noticing their own needs and feelings.
Only 2 tasks.`
}
