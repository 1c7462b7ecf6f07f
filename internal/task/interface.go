package task

import (
	"context"

	"smart-task-intake/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// ProcessIntent parses raw text into a structured task, persists it, and
	// assigns it to the caller's folders.
	ProcessIntent(ctx context.Context, sc model.Scope, input ProcessIntentInput) (ProcessIntentOutput, error)

	// List returns the caller's tasks for a scope (today, overdue, upcoming).
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)

	// Update patches a task. A transition to completed on a recurring task
	// triggers recurrence expansion.
	Update(ctx context.Context, sc model.Scope, id string, input UpdateInput) (model.Task, error)

	// Delete removes a task and its subtasks.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Breakdown generates subtasks for a task, via the configured generator
	// or the heuristic templates.
	Breakdown(ctx context.Context, sc model.Scope, id string) (BreakdownOutput, error)

	// ToggleSubtask flips the done flag of one subtask.
	ToggleSubtask(ctx context.Context, sc model.Scope, subtaskID string, done bool) (model.Subtask, error)
}

// SubtaskGenerator is the optional model-backed breakdown collaborator.
// Implementations live outside the core; the use case falls back to static
// templates when the generator is absent or fails.
type SubtaskGenerator interface {
	GenerateSubtasks(ctx context.Context, title string) ([]string, error)
}
