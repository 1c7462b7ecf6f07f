package repository

import (
	"time"

	"smart-task-intake/internal/model"
)

// TaskFilter narrows FindTasks. Zero-value fields are not applied.
// Due windows are [DueFrom, DueTo): inclusive lower, exclusive upper.
type TaskFilter struct {
	UserID   string
	Status   model.TaskStatus
	SeriesID string
	DueFrom  *time.Time
	DueTo    *time.Time
	OrNoDue  bool // also match tasks without a due date (today scope)
}

// TaskUpdate applies only the provided fields. Nil pointers are left alone;
// clearing a due date is not supported.
type TaskUpdate struct {
	Title              *string
	Status             *model.TaskStatus
	DueAt              *time.Time
	IsRecurring        *bool
	RecurrenceInterval *model.RecurrenceInterval
	RecurrenceSeriesID *string
}

// FolderFilter narrows FindFolders to an owner and optionally a name set.
type FolderFilter struct {
	UserID string
	NameIn []string
}
