package fsrs

import (
	"math/rand"
	"time"
)

// ScheduleResult is a concrete next-review decision.
type ScheduleResult struct {
	State         MemoryState
	ScheduledDays int
	Interval      int // unfuzzed interval, before floors and fuzz
	NextReview    time.Time
}

// Schedule turns an update into a concrete next-review date. The
// per-grade minimum-interval policy is applied to the (optionally
// fuzzed) computed interval:
//
//	Again -> lapseMinIntervalDays, ignoring the interval entirely
//	Hard  -> max(lapseMinIntervalDays+1, interval)
//	Good  -> max(lapseMinIntervalDays+2, interval)
//	Easy  -> max(lapseMinIntervalDays+3, interval)
//
// The result is capped at maxIntervalDays. NextReview is date-only:
// today truncated to UTC midnight plus the scheduled days. Passing a
// nil rng disables fuzz.
func Schedule(p Params, upd Update, grade Grade, today time.Time, rng *rand.Rand) ScheduleResult {
	mustValidGrade(grade)
	p = p.Resolve()

	days := scheduledDays(p, grade, fuzzInterval(upd.Interval, rng))

	day := truncateToDay(today)
	return ScheduleResult{
		State:         upd.State,
		ScheduledDays: days,
		Interval:      upd.Interval,
		NextReview:    day.AddDate(0, 0, days),
	}
}

// scheduledDays applies the per-grade floor policy and the max cap.
func scheduledDays(p Params, grade Grade, interval int) int {
	var days int
	switch grade {
	case Again:
		days = p.LapseMinIntervalDays
	case Hard:
		days = maxInt(p.LapseMinIntervalDays+1, interval)
	case Good:
		days = maxInt(p.LapseMinIntervalDays+2, interval)
	case Easy:
		days = maxInt(p.LapseMinIntervalDays+3, interval)
	}
	if days > p.MaxIntervalDays {
		days = p.MaxIntervalDays
	}
	return days
}

// truncateToDay drops time-of-day; all scheduling arithmetic is
// date-only in UTC.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
