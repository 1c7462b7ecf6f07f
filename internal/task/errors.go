package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrNotFound        = errors.New("task not found")
	ErrNotOwner        = errors.New("task does not belong to caller")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidInterval = errors.New("invalid recurrence interval")
	ErrInvalidScope    = errors.New("invalid list scope")
)
