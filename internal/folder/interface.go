package folder

import (
	"context"

	"smart-task-intake/internal/model"
)

// UseCase defines the business logic interface for the folder domain.
type UseCase interface {
	// EnsureFolders guarantees the caller's purpose-configured folders exist.
	// Idempotent; safe under concurrent calls for the same owner.
	EnsureFolders(ctx context.Context, sc model.Scope) ([]model.Folder, error)

	// AssignTask scores the content against the caller's folder set and
	// upserts task-folder links for every match.
	AssignTask(ctx context.Context, sc model.Scope, taskID, content string) ([]Match, error)

	// List returns the caller's folders.
	List(ctx context.Context, sc model.Scope) ([]model.Folder, error)
}
