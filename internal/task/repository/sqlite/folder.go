package sqlite

import (
	"context"
	"fmt"
	"strings"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task/repository"
)

// UpsertFolder creates the folder if absent. An existing (user_id, name) row
// keeps all of its fields; the UNIQUE constraint makes repeated and
// concurrent ensure calls converge on one row.
func (r *Repo) UpsertFolder(ctx context.Context, f model.Folder) (model.Folder, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO folders (id, user_id, name, icon, color, is_system, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, name) DO NOTHING`,
		f.ID, f.UserID, f.Name, f.Icon, f.Color, f.IsSystem, f.CreatedAt,
	)
	if err != nil {
		return model.Folder{}, fmt.Errorf("failed to upsert folder: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, icon, color, is_system, created_at
		FROM folders WHERE user_id = ? AND name = ?`, f.UserID, f.Name)

	var out model.Folder
	if err := row.Scan(&out.ID, &out.UserID, &out.Name, &out.Icon, &out.Color, &out.IsSystem, &out.CreatedAt); err != nil {
		return model.Folder{}, fmt.Errorf("failed to read folder after upsert: %w", err)
	}
	return out, nil
}

func (r *Repo) FindFolders(ctx context.Context, filter repository.FolderFilter) ([]model.Folder, error) {
	query := `SELECT id, user_id, name, icon, color, is_system, created_at FROM folders WHERE user_id = ?`
	args := []any{filter.UserID}

	if len(filter.NameIn) > 0 {
		query += ` AND name IN (?` + strings.Repeat(", ?", len(filter.NameIn)-1) + `)`
		for _, name := range filter.NameIn {
			args = append(args, name)
		}
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	defer rows.Close()

	var folders []model.Folder
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Icon, &f.Color, &f.IsSystem, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (r *Repo) UpsertTaskFolderLink(ctx context.Context, link model.TaskFolder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO task_folders (task_id, folder_id, confidence)
		VALUES (?, ?, ?)
		ON CONFLICT(task_id, folder_id) DO UPDATE SET confidence = excluded.confidence`,
		link.TaskID, link.FolderID, link.Confidence,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert task-folder link: %w", err)
	}
	return nil
}

func (r *Repo) ListTaskFolders(ctx context.Context, taskID string) ([]model.TaskFolder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT task_id, folder_id, confidence
		FROM task_folders WHERE task_id = ?
		ORDER BY confidence DESC`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task-folder links: %w", err)
	}
	defer rows.Close()

	var links []model.TaskFolder
	for rows.Next() {
		var l model.TaskFolder
		if err := rows.Scan(&l.TaskID, &l.FolderID, &l.Confidence); err != nil {
			return nil, fmt.Errorf("failed to scan task-folder link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
