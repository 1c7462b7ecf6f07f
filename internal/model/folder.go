package model

import "time"

// AccountPurpose selects which folder profile a user gets.
type AccountPurpose string

const (
	PurposeLegal  AccountPurpose = "legal"
	PurposeSchool AccountPurpose = "school"
	PurposeWork   AccountPurpose = "work"
	PurposeCustom AccountPurpose = "custom"
)

// Folder is a persisted organizational bucket owned by a user.
// UserID+Name is unique; the storage layer enforces it so the ensure
// operation stays idempotent under concurrent calls.
type Folder struct {
	ID        string
	UserID    string
	Name      string
	Icon      string
	Color     string
	IsSystem  bool
	CreatedAt time.Time
}

// TaskFolder links a task to a folder with the classifier's confidence.
type TaskFolder struct {
	TaskID     string
	FolderID   string
	Confidence float64
}
