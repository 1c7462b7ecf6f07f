package usecase

import (
	"context"

	"smart-task-intake/internal/folder"
	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task/repository"
)

// AssignTask classifies content against the caller's folder set and links
// the task to every qualifying folder with its confidence. Scoring is pure;
// only the link upserts touch storage.
func (uc *implUseCase) AssignTask(ctx context.Context, sc model.Scope, taskID, content string) ([]folder.Match, error) {
	if _, err := uc.EnsureFolders(ctx, sc); err != nil {
		return nil, err
	}

	defs := folder.DefinitionsForPurpose(sc.AccountPurpose)
	matches := folder.Score(content, defs)

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}

	folders, err := uc.repo.FindFolders(ctx, repository.FolderFilter{
		UserID: sc.UserID,
		NameIn: names,
	})
	if err != nil {
		return nil, err
	}

	byName := make(map[string]model.Folder, len(folders))
	for _, f := range folders {
		byName[f.Name] = f
	}

	for _, m := range matches {
		f, ok := byName[m.Name]
		if !ok {
			// Folder failed to ensure earlier; skip the link, keep the match.
			uc.l.Warnf(ctx, "AssignTask: folder %q missing for user=%s, link skipped", m.Name, sc.UserID)
			continue
		}
		if err := uc.repo.UpsertTaskFolderLink(ctx, model.TaskFolder{
			TaskID:     taskID,
			FolderID:   f.ID,
			Confidence: m.Confidence,
		}); err != nil {
			uc.l.Errorf(ctx, "AssignTask: link task=%s folder=%q failed: %v", taskID, m.Name, err)
		}
	}

	return matches, nil
}
