package journal

import "agencybuilder/coach/types"

// Fixed content used whenever the coach is unreachable or misbehaves. The
// reflective-journaling flow stays usable with zero connectivity, so none of
// these paths are errors from the user's point of view.

// FallbackFeedback replaces the coach's feedback when the feedback-and-plan
// call fails after submission.
const FallbackFeedback = "我的大脑暂时有点短路（API连接错误）。不过，能记录下来本身就是主体性的体现！"

// FallbackNextPlan is the single queued task stored alongside
// FallbackFeedback.
func FallbackNextPlan() []types.Task {
	return []types.Task{
		{ID: "fallback-1", Text: "写下一件你今天为了取悦自己而做的事。", Category: types.CategorySelfWorth},
	}
}

// FallbackInitialPlan is the fixed two-task day-one plan used when the coach
// cannot generate one. The user is never left with an empty task list.
func FallbackInitialPlan() []types.Task {
	return []types.Task{
		{ID: "init-1", Text: "问自己“我现在想喝什么？”并立刻去喝，不要评判这个想法。", Category: types.CategoryDecision},
		{ID: "init-2", Text: "在对话中，尝试用“我认为...”或“我感觉...”作为句子的开头。", Category: types.CategoryVoicing},
	}
}
