package usecase

import (
	"context"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task"
	"smart-task-intake/internal/task/repository"
	"smart-task-intake/pkg/datemath"
)

// List returns the caller's tasks for a scope. "today" includes tasks with
// no due date at all; "overdue" only ever shows pending tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	now := uc.clock.Now()
	filter := repository.TaskFilter{UserID: sc.UserID}

	switch input.Scope {
	case task.ScopeToday:
		start := datemath.StartOfDay(now)
		end := datemath.EndOfDay(now)
		filter.DueFrom = &start
		filter.DueTo = &end
		filter.OrNoDue = true
	case task.ScopeOverdue:
		filter.DueTo = &now
		filter.Status = model.StatusPending
	case task.ScopeUpcoming:
		end := datemath.EndOfDay(now)
		filter.DueFrom = &end
	case "":
		// no scope: everything the caller owns
	default:
		return nil, task.ErrInvalidScope
	}

	return uc.repo.FindTasks(ctx, filter)
}
