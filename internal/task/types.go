package task

import (
	"time"

	"smart-task-intake/internal/model"
)

// List scopes supported by the List operation.
const (
	ScopeToday    = "today"
	ScopeOverdue  = "overdue"
	ScopeUpcoming = "upcoming"
)

// ProcessIntentInput is raw captured text plus capture metadata.
// UserID travels in model.Scope, not here.
type ProcessIntentInput struct {
	Text               string
	SourceType         model.SourceType
	IsRecurring        bool
	RecurrenceInterval model.RecurrenceInterval
}

// ProcessIntentOutput is the created task plus classification results.
type ProcessIntentOutput struct {
	Task          model.Task
	FolderNames   []string
	Clarification string // non-empty when the input needs a follow-up question
	CalendarLink  string // deep link to the calendar event, may be empty
}

// ListInput selects a task listing scope.
type ListInput struct {
	Scope string // today, overdue, upcoming, or empty for everything
}

// UpdateInput carries the PATCH fields; nil means "leave alone".
type UpdateInput struct {
	Title              *string
	Status             *model.TaskStatus
	DueAt              *time.Time
	IsRecurring        *bool
	RecurrenceInterval *model.RecurrenceInterval
}

// BreakdownOutput is the full breakdown of one task.
type BreakdownOutput struct {
	Subtasks []model.Subtask
	Stats    model.SubtaskStats
}
