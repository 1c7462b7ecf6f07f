package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task"
	"smart-task-intake/internal/task/repository"
)

// Static breakdown templates, used when no generator is configured or the
// generator fails. Keys are matched as substrings of the lowercased title,
// in order, first hit wins.
var breakdownTemplates = []struct {
	key   string
	steps []string
}{
	{"benefits", []string{
		"Gather necessary documents (ID, proof of income, residency)",
		"Find the correct application website or local office",
		"Fill out the application form",
		"Submit the application",
		"Save confirmation number and date",
	}},
	{"housing", []string{
		"Check credit score and rental history",
		"Determine budget and desired location",
		"Search online listings (Zillow, Craigslist)",
		"Contact landlords to schedule viewings",
		"Fill out rental applications",
	}},
	{"court", []string{
		"Confirm court date, time, and location",
		"Review legal documents/paperwork",
		"Contact attorney or public defender",
		"Plan transportation to arrival 30 mins early",
		"Dress appropriately for court",
	}},
	{"probation", []string{
		"Confirm meeting time with PO",
		"Gather proof of employment/residency if needed",
		"Prepare payment for any fees",
		"Arrive 15 minutes early",
		"Update calendar with next visit",
	}},
}

var defaultTemplate = []string{
	"Define the first small step",
	"Gather materials needed",
	"Set a dedicated time to work on this",
	"Execute the first step",
}

// Breakdown generates 3-5 actionable subtasks for a task. The configured
// generator is tried first; any failure falls back to the static templates.
// Existing subtasks are replaced wholesale so a re-run cannot duplicate steps.
func (uc *implUseCase) Breakdown(ctx context.Context, sc model.Scope, id string) (task.BreakdownOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.BreakdownOutput{}, err
	}

	labels := uc.generateLabels(ctx, t.Title)

	subtasks := make([]model.Subtask, len(labels))
	for i, label := range labels {
		subtasks[i] = model.Subtask{
			ID:         newSubtaskID(),
			TaskID:     t.ID,
			Label:      label,
			OrderIndex: i,
			Done:       false,
		}
	}

	if err := uc.repo.ReplaceSubtasks(ctx, t.ID, subtasks); err != nil {
		return task.BreakdownOutput{}, fmt.Errorf("failed to store subtasks: %w", err)
	}

	uc.l.Infof(ctx, "Breakdown: task=%s subtasks=%d", t.ID, len(subtasks))
	return task.BreakdownOutput{
		Subtasks: subtasks,
		Stats:    subtaskStats(subtasks),
	}, nil
}

// ToggleSubtask flips the done flag of a single subtask.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, sc model.Scope, subtaskID string, done bool) (model.Subtask, error) {
	st, err := uc.repo.UpdateSubtask(ctx, subtaskID, done)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Subtask{}, task.ErrNotFound
	}
	if err != nil {
		return model.Subtask{}, fmt.Errorf("failed to toggle subtask: %w", err)
	}
	return st, nil
}

func (uc *implUseCase) generateLabels(ctx context.Context, title string) []string {
	if uc.generator != nil {
		labels, err := uc.generator.GenerateSubtasks(ctx, title)
		if err != nil {
			uc.l.Warnf(ctx, "Breakdown: generator failed for %q, using templates: %v", title, err)
		} else if len(labels) > 0 {
			return labels
		}
	}

	lower := strings.ToLower(title)
	for _, tmpl := range breakdownTemplates {
		if strings.Contains(lower, tmpl.key) {
			return tmpl.steps
		}
	}
	return defaultTemplate
}

func subtaskStats(subtasks []model.Subtask) model.SubtaskStats {
	stats := model.SubtaskStats{Total: len(subtasks)}
	for _, st := range subtasks {
		if st.Done {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.Progress = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}
