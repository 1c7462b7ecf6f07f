package usecase

import "github.com/google/uuid"

func newTaskID() string { return uuid.NewString() }

func newSubtaskID() string { return uuid.NewString() }
