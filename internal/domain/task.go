package domain

import "time"

// Task is a to-do item. OwnerID is a foreign key to the owning user and is
// immutable after creation; no task is visible to any other identity.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}
