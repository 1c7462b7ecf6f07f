package usecase

import (
	"context"
	"errors"
	"fmt"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task"
	"smart-task-intake/internal/task/repository"
)

// Update patches a task with the provided fields. A transition to completed
// on a recurring task triggers recurrence expansion; an expansion failure is
// logged and swallowed — the completion itself is authoritative.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id string, input task.UpdateInput) (model.Task, error) {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return model.Task{}, err
	}

	if input.Status != nil && *input.Status != model.StatusPending && *input.Status != model.StatusCompleted {
		return model.Task{}, task.ErrInvalidStatus
	}
	if input.RecurrenceInterval != nil && !input.RecurrenceInterval.Valid() {
		return model.Task{}, task.ErrInvalidInterval
	}

	updated, err := uc.repo.UpdateTask(ctx, id, repository.TaskUpdate{
		Title:              input.Title,
		Status:             input.Status,
		DueAt:              input.DueAt,
		IsRecurring:        input.IsRecurring,
		RecurrenceInterval: input.RecurrenceInterval,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	completing := input.Status != nil && *input.Status == model.StatusCompleted &&
		existing.Status != model.StatusCompleted

	if completing && updated.IsRecurring && updated.RecurrenceInterval.Valid() {
		if expandErr := uc.expandRecurrence(ctx, updated); expandErr != nil {
			uc.l.Errorf(ctx, "Update: recurrence expansion failed for task=%s (non-fatal): %v", id, expandErr)
		}
	}

	return updated, nil
}

// Delete removes a task together with its subtasks and folder links.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	return uc.repo.DeleteTask(ctx, id)
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to load task: %w", err)
	}
	if t.UserID != sc.UserID {
		return model.Task{}, task.ErrNotOwner
	}
	return t, nil
}
