package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, category, source_type, status,
	due_at, is_recurring, recurrence_interval, recurrence_series_id,
	requires_clarification, created_at, updated_at`

func (r *Repo) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Description, t.Category, string(t.SourceType),
		string(t.Status), nullableTime(t.DueAt), t.IsRecurring,
		string(t.RecurrenceInterval), t.RecurrenceSeriesID,
		t.RequiresClarification, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	return t, nil
}

func (r *Repo) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

func (r *Repo) FindTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	var (
		conds []string
		args  []any
	)

	if filter.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.SeriesID != "" {
		conds = append(conds, "recurrence_series_id = ?")
		args = append(args, filter.SeriesID)
	}

	var due []string
	if filter.DueFrom != nil {
		due = append(due, "due_at >= ?")
		args = append(args, *filter.DueFrom)
	}
	if filter.DueTo != nil {
		due = append(due, "due_at < ?")
		args = append(args, *filter.DueTo)
	}
	if len(due) > 0 {
		clause := "(" + strings.Join(due, " AND ") + ")"
		if filter.OrNoDue {
			clause = "(" + clause + " OR due_at IS NULL)"
		}
		conds = append(conds, clause)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY due_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan task: %w", scanErr)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *Repo) UpdateTask(ctx context.Context, id string, update repository.TaskUpdate) (model.Task, error) {
	var (
		sets []string
		args []any
	)

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*update.Status))
	}
	if update.DueAt != nil {
		sets = append(sets, "due_at = ?")
		args = append(args, *update.DueAt)
	}
	if update.IsRecurring != nil {
		sets = append(sets, "is_recurring = ?")
		args = append(args, *update.IsRecurring)
	}
	if update.RecurrenceInterval != nil {
		sets = append(sets, "recurrence_interval = ?")
		args = append(args, string(*update.RecurrenceInterval))
	}
	if update.RecurrenceSeriesID != nil {
		sets = append(sets, "recurrence_series_id = ?")
		args = append(args, *update.RecurrenceSeriesID)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now().UTC())
		args = append(args, id)

		res, err := r.db.ExecContext(ctx,
			`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return model.Task{}, fmt.Errorf("failed to update task: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return model.Task{}, repository.ErrNotFound
		}
	}

	return r.GetTask(ctx, id)
}

func (r *Repo) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete subtasks: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_folders WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete folder links: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t        model.Task
		dueAt    sql.NullTime
		source   string
		status   string
		interval string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Category, &source, &status,
		&dueAt, &t.IsRecurring, &interval, &t.RecurrenceSeriesID,
		&t.RequiresClarification, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.SourceType = model.SourceType(source)
	t.Status = model.TaskStatus(status)
	t.RecurrenceInterval = model.RecurrenceInterval(interval)
	if dueAt.Valid {
		due := dueAt.Time
		t.DueAt = &due
	}
	return t, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
