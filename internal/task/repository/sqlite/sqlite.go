// Package sqlite is the SQLite-backed storage adapter. It is the only place
// that knows SQL; everything above it talks through repository.Repository.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                     TEXT PRIMARY KEY,
	user_id                TEXT NOT NULL,
	title                  TEXT NOT NULL,
	description            TEXT NOT NULL DEFAULT '',
	category               TEXT NOT NULL DEFAULT 'other',
	source_type            TEXT NOT NULL DEFAULT 'text',
	status                 TEXT NOT NULL DEFAULT 'pending',
	due_at                 TIMESTAMP,
	is_recurring           INTEGER NOT NULL DEFAULT 0,
	recurrence_interval    TEXT NOT NULL DEFAULT '',
	recurrence_series_id   TEXT NOT NULL DEFAULT '',
	requires_clarification INTEGER NOT NULL DEFAULT 0,
	created_at             TIMESTAMP NOT NULL,
	updated_at             TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_user_due ON tasks(user_id, due_at);
CREATE INDEX IF NOT EXISTS idx_tasks_series ON tasks(recurrence_series_id, status);

CREATE TABLE IF NOT EXISTS folders (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	icon       TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	is_system  INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	UNIQUE(user_id, name)
);

CREATE TABLE IF NOT EXISTS task_folders (
	task_id    TEXT NOT NULL,
	folder_id  TEXT NOT NULL,
	confidence REAL NOT NULL,
	PRIMARY KEY (task_id, folder_id)
);

CREATE TABLE IF NOT EXISTS subtasks (
	id          TEXT PRIMARY KEY,
	task_id     TEXT NOT NULL,
	label       TEXT NOT NULL,
	order_index INTEGER NOT NULL,
	done        INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_subtasks_task ON subtasks(task_id, order_index);
`

// Repo implements repository.Repository on SQLite.
type Repo struct {
	db *sql.DB
}

// New opens (or creates) the database at path and bootstraps the schema.
func New(ctx context.Context, path string) (*Repo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent use.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return &Repo{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Repo) Close() error {
	return r.db.Close()
}
