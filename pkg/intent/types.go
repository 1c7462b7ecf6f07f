package intent

import "time"

// Category is the task category derived from keyword families.
type Category string

const (
	CategoryProbation Category = "probation"
	CategoryCourt     Category = "court"
	CategoryBenefits  Category = "benefits"
	CategoryHousing   Category = "housing"
	CategoryMedical   Category = "medical"
	CategoryWork      Category = "work"
	CategoryOther     Category = "other"
)

// ParsedIntent is the structured result of a single parse call.
// Immutable once returned; persistence is the caller's job.
type ParsedIntent struct {
	Title                 string
	Description           string
	Category              Category
	DueAt                 *time.Time
	RequiresClarification bool
	ClarificationPrompt   string
}

// TimeToken is a raw clock expression lifted from the text, before any
// meridian defaulting is applied.
type TimeToken struct {
	Hour     int
	Minute   int
	Meridian string // "am", "pm", or "" when absent
}

// Signals are the lexical facts extracted from one input text. The date
// resolver and the classifiers consume these instead of re-scanning the text.
type Signals struct {
	Normalized string // lower-cased input

	Category Category

	Weekday    time.Weekday
	HasWeekday bool

	HasTomorrow    bool
	HasToday       bool
	HasNextWeek    bool
	HasNextWeekday bool // "next" present together with a weekday name

	Time        *TimeToken
	HasAtPrefix bool // text contains the literal "at "
}
