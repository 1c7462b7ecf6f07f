package usecase

import (
	"context"
	"time"

	"smart-task-intake/internal/folder"
	"smart-task-intake/internal/task"
	"smart-task-intake/internal/task/repository"
	pkgClock "smart-task-intake/pkg/clock"
	"smart-task-intake/pkg/gcalendar"
	pkgLog "smart-task-intake/pkg/log"
)

// DefaultDuplicateWindow is the tolerance band around a computed next-due
// date inside which an existing pending occurrence suppresses creation.
const DefaultDuplicateWindow = 24 * time.Hour

// CalendarClient is the optional calendar collaborator.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	folderUC  folder.UseCase
	generator task.SubtaskGenerator // nil when no model is configured
	calendar  CalendarClient        // nil when calendar sync is off
	clock     pkgClock.Clock
	timezone  string
	dupWindow time.Duration
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	folderUC folder.UseCase,
	generator task.SubtaskGenerator,
	calendar CalendarClient,
	clock pkgClock.Clock,
	timezone string,
	dupWindow time.Duration,
) *implUseCase {
	if dupWindow <= 0 {
		dupWindow = DefaultDuplicateWindow
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		folderUC:  folderUC,
		generator: generator,
		calendar:  calendar,
		clock:     clock,
		timezone:  timezone,
		dupWindow: dupWindow,
	}
}
