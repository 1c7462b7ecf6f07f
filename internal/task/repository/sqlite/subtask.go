package sqlite

import (
	"context"
	"fmt"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task/repository"
)

// ReplaceSubtasks swaps the full breakdown of a task in one transaction, so
// a re-run never leaves a mix of old and new steps.
func (r *Repo) ReplaceSubtasks(ctx context.Context, taskID string, subtasks []model.Subtask) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("failed to clear subtasks: %w", err)
	}

	for _, st := range subtasks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO subtasks (id, task_id, label, order_index, done)
			VALUES (?, ?, ?, ?, ?)`,
			st.ID, taskID, st.Label, st.OrderIndex, st.Done,
		)
		if err != nil {
			return fmt.Errorf("failed to insert subtask: %w", err)
		}
	}

	return tx.Commit()
}

func (r *Repo) UpdateSubtask(ctx context.Context, id string, done bool) (model.Subtask, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE subtasks SET done = ? WHERE id = ?`, done, id)
	if err != nil {
		return model.Subtask{}, fmt.Errorf("failed to update subtask: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Subtask{}, repository.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, task_id, label, order_index, done FROM subtasks WHERE id = ?`, id)
	var st model.Subtask
	if err := row.Scan(&st.ID, &st.TaskID, &st.Label, &st.OrderIndex, &st.Done); err != nil {
		return model.Subtask{}, fmt.Errorf("failed to read subtask: %w", err)
	}
	return st, nil
}

func (r *Repo) ListSubtasks(ctx context.Context, taskID string) ([]model.Subtask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, label, order_index, done
		FROM subtasks WHERE task_id = ?
		ORDER BY order_index ASC`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subtasks: %w", err)
	}
	defer rows.Close()

	var subtasks []model.Subtask
	for rows.Next() {
		var st model.Subtask
		if err := rows.Scan(&st.ID, &st.TaskID, &st.Label, &st.OrderIndex, &st.Done); err != nil {
			return nil, fmt.Errorf("failed to scan subtask: %w", err)
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, rows.Err()
}
