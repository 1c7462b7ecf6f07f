package folder

import "errors"

// Domain-specific errors for the folder package.
var (
	ErrEnsureFailed = errors.New("failed to ensure any folder")
	ErrTaskNotFound = errors.New("task not found for folder assignment")
)
