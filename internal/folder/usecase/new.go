package usecase

import (
	"smart-task-intake/internal/task/repository"
	pkgClock "smart-task-intake/pkg/clock"
	pkgLog "smart-task-intake/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock pkgClock.Clock
}

// New creates a new folder UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, clock pkgClock.Clock) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		clock: clock,
	}
}
