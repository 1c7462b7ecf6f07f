package repository

import (
	"context"
	"errors"

	"smart-task-intake/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Repository is the storage collaborator. The core never talks to a database
// directly; everything goes through this interface so parsing, scoring, and
// recurrence logic stay testable with in-memory fakes.
//
// UpsertFolder and UpsertTaskFolderLink must be idempotent: the storage layer
// enforces uniqueness on (user, folder name) and (task, folder).
type Repository interface {
	CreateTask(ctx context.Context, task model.Task) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	FindTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error)
	UpdateTask(ctx context.Context, id string, update TaskUpdate) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	UpsertFolder(ctx context.Context, f model.Folder) (model.Folder, error)
	FindFolders(ctx context.Context, filter FolderFilter) ([]model.Folder, error)
	UpsertTaskFolderLink(ctx context.Context, link model.TaskFolder) error
	ListTaskFolders(ctx context.Context, taskID string) ([]model.TaskFolder, error)

	ReplaceSubtasks(ctx context.Context, taskID string, subtasks []model.Subtask) error
	UpdateSubtask(ctx context.Context, id string, done bool) (model.Subtask, error)
	ListSubtasks(ctx context.Context, taskID string) ([]model.Subtask, error)
}
