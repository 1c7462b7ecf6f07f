package intent

import (
	"time"

	"smart-task-intake/pkg/datemath"
)

// Default clock times applied when the text names a day but no time.
const (
	defaultMorningHour = 9  // tomorrow / weekday
	defaultEveningHour = 17 // today
)

// ResolveDue turns extracted signals into a concrete due timestamp, or nil
// when the text carries no date signal at all. The case order is the
// contract: tomorrow > today > weekday > bare "at <time>" > nothing.
func ResolveDue(sig Signals, now time.Time) *time.Time {
	switch {
	case sig.HasTomorrow:
		due := applyClock(now.AddDate(0, 0, 1), sig.Time, defaultMorningHour)
		return &due

	case sig.HasToday:
		due := applyClock(now, sig.Time, defaultEveningHour)
		return &due

	case sig.HasWeekday:
		days := datemath.DaysUntilWeekday(now.Weekday(), sig.Weekday, sig.HasNextWeekday)
		due := applyClock(now.AddDate(0, 0, days), sig.Time, defaultMorningHour)
		return &due

	case sig.Time != nil && sig.HasAtPrefix:
		hour, minute := clockFromToken(sig.Time)
		due := datemath.At(now, hour, minute)
		if !due.After(now) {
			due = due.AddDate(0, 0, 1)
		}
		return &due
	}

	return nil
}

func applyClock(day time.Time, tok *TimeToken, defaultHour int) time.Time {
	if tok == nil {
		return datemath.At(day, defaultHour, 0)
	}
	hour, minute := clockFromToken(tok)
	return datemath.At(day, hour, minute)
}

// clockFromToken applies the meridian rules. Without an explicit meridian,
// hours 1-7 are read as PM and 8-12 as-is: "at 3" means 15:00, "at 9" means
// 09:00. This asymmetry is intentional; do not normalize it away.
func clockFromToken(tok *TimeToken) (hour, minute int) {
	hour, minute = tok.Hour, tok.Minute

	switch tok.Meridian {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		if hour >= 1 && hour <= 7 {
			hour += 12
		}
	}

	return hour, minute
}
