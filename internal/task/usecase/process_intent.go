package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task"
	"smart-task-intake/pkg/gcalendar"
	"smart-task-intake/pkg/intent"
)

// ProcessIntent runs the capture pipeline: parse the raw text, persist the
// task, assign it to folders, and best-effort schedule a calendar event.
func (uc *implUseCase) ProcessIntent(ctx context.Context, sc model.Scope, input task.ProcessIntentInput) (task.ProcessIntentOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ProcessIntentOutput{}, task.ErrEmptyInput
	}
	if input.IsRecurring && !input.RecurrenceInterval.Valid() {
		return task.ProcessIntentOutput{}, task.ErrInvalidInterval
	}

	uc.l.Infof(ctx, "ProcessIntent: user=%s source=%s input_length=%d", sc.UserID, input.SourceType, len(input.Text))

	now := uc.clock.Now()
	parsed := intent.Parse(input.Text, now)

	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = model.SourceText
	}

	created, err := uc.repo.CreateTask(ctx, model.Task{
		ID:                    uuid.NewString(),
		UserID:                sc.UserID,
		Title:                 parsed.Title,
		Description:           parsed.Description,
		Category:              string(parsed.Category),
		SourceType:            sourceType,
		Status:                model.StatusPending,
		DueAt:                 parsed.DueAt,
		IsRecurring:           input.IsRecurring,
		RecurrenceInterval:    input.RecurrenceInterval,
		RequiresClarification: parsed.RequiresClarification,
		CreatedAt:             now,
		UpdatedAt:             now,
	})
	if err != nil {
		return task.ProcessIntentOutput{}, fmt.Errorf("failed to create task: %w", err)
	}

	// Folder assignment works off the raw content, independent of the parse.
	matches, err := uc.folderUC.AssignTask(ctx, sc, created.ID, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "ProcessIntent: folder assignment failed for task=%s (non-fatal): %v", created.ID, err)
	}

	folderNames := make([]string, len(matches))
	for i, m := range matches {
		folderNames[i] = m.Name
	}

	calendarLink := uc.tryCreateCalendarEvent(ctx, created)

	out := task.ProcessIntentOutput{
		Task:         created,
		FolderNames:  folderNames,
		CalendarLink: calendarLink,
	}
	if parsed.RequiresClarification {
		out.Clarification = parsed.ClarificationPrompt
	}

	uc.l.Infof(ctx, "ProcessIntent: created task=%s category=%s folders=%d", created.ID, created.Category, len(folderNames))
	return out, nil
}

// tryCreateCalendarEvent schedules a one-hour event at the task's due time.
// Returns the event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueAt == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   *t.DueAt,
		EndTime:     t.DueAt.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "ProcessIntent: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}
