package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Time pattern: "7", "7pm", "7:30", "7:30pm", "at 7". One pattern, first
// match wins; overlapping forms are never combined.
var timePattern = regexp.MustCompile(`(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

var weekdayPattern = regexp.MustCompile(`monday|tuesday|wednesday|thursday|friday|saturday|sunday`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// categoryRules is the fixed-priority keyword family chain. The first rule
// whose pattern hits wins; order is part of the contract, not incidental.
var categoryRules = []struct {
	pattern  *regexp.Regexp
	category Category
}{
	{regexp.MustCompile(`po|probation|officer|check-in`), CategoryProbation},
	{regexp.MustCompile(`court|hearing|appear|judge|legal`), CategoryCourt},
	{regexp.MustCompile(`benefits|snap|medicaid|food stamps|voucher`), CategoryBenefits},
	{regexp.MustCompile(`housing|rent|lease|landlord`), CategoryHousing},
	{regexp.MustCompile(`doctor|med(ical|icine)|prescri(ption|be)|clinic|appointment`), CategoryMedical},
	{regexp.MustCompile(`work|job|shift|boss|interview`), CategoryWork},
}

// ExtractSignals runs the lexical pass over raw text. Pure and deterministic;
// must run before date resolution and classification.
func ExtractSignals(text string) Signals {
	lower := strings.ToLower(text)

	sig := Signals{
		Normalized:  lower,
		Category:    CategoryOther,
		HasTomorrow: strings.Contains(lower, "tomorrow"),
		HasToday:    strings.Contains(lower, "today"),
		HasNextWeek: strings.Contains(lower, "next week"),
		HasAtPrefix: strings.Contains(lower, "at "),
	}

	for _, rule := range categoryRules {
		if rule.pattern.MatchString(lower) {
			sig.Category = rule.category
			break
		}
	}

	if m := weekdayPattern.FindString(lower); m != "" {
		sig.Weekday = weekdays[m]
		sig.HasWeekday = true
		sig.HasNextWeekday = strings.Contains(lower, "next")
	}

	if m := timePattern.FindStringSubmatch(lower); m != nil {
		tok := &TimeToken{Meridian: m[3]}
		tok.Hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			tok.Minute, _ = strconv.Atoi(m[2])
		}
		sig.Time = tok
	}

	return sig
}
