package usecase

import (
	"context"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task/repository"
)

// List returns the caller's folders.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Folder, error) {
	return uc.repo.FindFolders(ctx, repository.FolderFilter{UserID: sc.UserID})
}
