// Package datemath holds the calendar arithmetic shared by the intent
// resolver, the task list scopes, and the recurrence expander.
package datemath

import (
	"fmt"
	"time"
)

// Interval units for Add. Values match the task recurrence enum.
const (
	IntervalDaily   = "daily"
	IntervalWeekly  = "weekly"
	IntervalMonthly = "monthly"
	IntervalYearly  = "yearly"
)

// Add advances t by exactly one interval unit.
// Month and year steps clamp the day-of-month to the last valid day of the
// target month (Jan 31 + 1 month = Feb 29/28), instead of Go's AddDate
// normalization which would spill into March.
func Add(t time.Time, interval string) (time.Time, error) {
	switch interval {
	case IntervalDaily:
		return t.AddDate(0, 0, 1), nil
	case IntervalWeekly:
		return t.AddDate(0, 0, 7), nil
	case IntervalMonthly:
		return addMonthsClamped(t, 1), nil
	case IntervalYearly:
		return addMonthsClamped(t, 12), nil
	}
	return t, fmt.Errorf("unknown recurrence interval: %q", interval)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) - 1 + months
	year += m / 12
	month = time.Month(m%12 + 1)

	if last := daysIn(year, month); day > last {
		day = last
	}

	hour, minute, sec := t.Clock()
	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysUntilWeekday returns how many days forward from current the next
// occurrence of target lies, always strictly in the future. forceNext pushes
// out one more week, for inputs that say "next <weekday>" explicitly.
func DaysUntilWeekday(current, target time.Weekday, forceNext bool) int {
	days := int(target) - int(current)
	if days <= 0 || forceNext {
		days += 7
	}
	return days
}

// At returns the same calendar day as t with the clock set to hour:minute.
func At(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// StartOfDay returns midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns midnight at the start of the following day.
// Day windows are [StartOfDay, EndOfDay).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}
