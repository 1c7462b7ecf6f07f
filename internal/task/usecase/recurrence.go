package usecase

import (
	"context"
	"fmt"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task/repository"
	"smart-task-intake/pkg/datemath"
)

// expandRecurrence derives the next occurrence of a just-completed recurring
// task. The first task of a series becomes the series root; every sibling
// carries the shared series id. A pending sibling with a due date inside the
// tolerance window suppresses creation, so a retried completion cannot fan
// out duplicates.
func (uc *implUseCase) expandRecurrence(ctx context.Context, completed model.Task) error {
	seriesID := completed.RecurrenceSeriesID
	if seriesID == "" {
		seriesID = completed.ID
		if _, err := uc.repo.UpdateTask(ctx, completed.ID, repository.TaskUpdate{
			RecurrenceSeriesID: &seriesID,
		}); err != nil {
			return fmt.Errorf("failed to assign series id: %w", err)
		}
	}

	base := uc.clock.Now()
	if completed.DueAt != nil {
		base = *completed.DueAt
	}

	nextDue, err := datemath.Add(base, string(completed.RecurrenceInterval))
	if err != nil {
		return err
	}

	windowFrom := nextDue.Add(-uc.dupWindow)
	windowTo := nextDue.Add(uc.dupWindow)
	existing, err := uc.repo.FindTasks(ctx, repository.TaskFilter{
		SeriesID: seriesID,
		Status:   model.StatusPending,
		DueFrom:  &windowFrom,
		DueTo:    &windowTo,
	})
	if err != nil {
		return fmt.Errorf("failed duplicate check: %w", err)
	}
	if len(existing) > 0 {
		uc.l.Infof(ctx, "expandRecurrence: series=%s already has a pending occurrence near %s, skipping", seriesID, nextDue)
		return nil
	}

	now := uc.clock.Now()
	next, err := uc.repo.CreateTask(ctx, model.Task{
		ID:                    newTaskID(),
		UserID:                completed.UserID,
		Title:                 completed.Title,
		Description:           completed.Description,
		Category:              completed.Category,
		SourceType:            completed.SourceType,
		Status:                model.StatusPending,
		DueAt:                 &nextDue,
		IsRecurring:           true,
		RecurrenceInterval:    completed.RecurrenceInterval,
		RecurrenceSeriesID:    seriesID,
		RequiresClarification: false,
		CreatedAt:             now,
		UpdatedAt:             now,
	})
	if err != nil {
		return fmt.Errorf("failed to create next occurrence: %w", err)
	}

	uc.l.Infof(ctx, "expandRecurrence: series=%s next=%s due=%s", seriesID, next.ID, nextDue)
	return nil
}
