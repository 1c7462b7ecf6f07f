package usecase

import (
	"context"

	"github.com/google/uuid"

	"smart-task-intake/internal/folder"
	"smart-task-intake/internal/model"
)

// EnsureFolders upserts every folder of the caller's purpose profile.
// Each upsert is attempted independently: one failing folder must not stop
// the rest of the set from being ensured. Uniqueness on (user, name) at the
// storage layer keeps repeated and concurrent calls duplicate-free.
func (uc *implUseCase) EnsureFolders(ctx context.Context, sc model.Scope) ([]model.Folder, error) {
	defs := folder.DefinitionsForPurpose(sc.AccountPurpose)
	uc.l.Infof(ctx, "EnsureFolders: user=%s purpose=%s folders=%d", sc.UserID, sc.AccountPurpose, len(defs))

	ensured := make([]model.Folder, 0, len(defs))
	var failed int

	for _, def := range defs {
		f, err := uc.repo.UpsertFolder(ctx, model.Folder{
			ID:        uuid.NewString(),
			UserID:    sc.UserID,
			Name:      def.Name,
			Icon:      def.Icon,
			Color:     def.Color,
			IsSystem:  true,
			CreatedAt: uc.clock.Now(),
		})
		if err != nil {
			failed++
			uc.l.Errorf(ctx, "EnsureFolders: upsert %q failed for user=%s: %v", def.Name, sc.UserID, err)
			continue
		}
		ensured = append(ensured, f)
	}

	if failed > 0 && len(ensured) == 0 {
		return nil, folder.ErrEnsureFailed
	}
	return ensured, nil
}
