package journal

import "time"

// DateLayout is the calendar-day format used as the sole unit of temporal
// bucketing. Dates are compared as opaque strings; there is no time-of-day
// granularity anywhere in the model.
const DateLayout = "2006/1/2"

// Today returns the current calendar day.
func Today() string {
	return time.Now().Format(DateLayout)
}
