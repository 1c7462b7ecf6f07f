package model

import "time"

// TaskStatus is the lifecycle state of a task instance.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// SourceType records how the raw text entered the system.
type SourceType string

const (
	SourceText  SourceType = "text"
	SourceVoice SourceType = "voice"
	SourceImage SourceType = "image" // OCR output, text only by the time it reaches us
)

// RecurrenceInterval is the supported recurrence step.
type RecurrenceInterval string

const (
	RecurDaily   RecurrenceInterval = "daily"
	RecurWeekly  RecurrenceInterval = "weekly"
	RecurMonthly RecurrenceInterval = "monthly"
	RecurYearly  RecurrenceInterval = "yearly"
)

// Valid reports whether the interval is one the recurrence expander handles.
func (r RecurrenceInterval) Valid() bool {
	switch r {
	case RecurDaily, RecurWeekly, RecurMonthly, RecurYearly:
		return true
	}
	return false
}

// Task is a single task record.
// Tasks in the same recurrence series share RecurrenceSeriesID; the first
// task of a series becomes the series root and the ID is never reassigned.
type Task struct {
	ID                    string
	UserID                string
	Title                 string
	Description           string
	Category              string
	SourceType            SourceType
	Status                TaskStatus
	DueAt                 *time.Time
	IsRecurring           bool
	RecurrenceInterval    RecurrenceInterval
	RecurrenceSeriesID    string
	RequiresClarification bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Subtask is one step of a task breakdown.
type Subtask struct {
	ID         string
	TaskID     string
	Label      string
	OrderIndex int
	Done       bool
}

// SubtaskStats summarizes breakdown progress for a task.
type SubtaskStats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"` // percentage 0-100
}
