package domain

import "time"

// Task represents a board task owned by a single user.
// StartedAt is set when the task first enters in_progress; CompletedAt is
// set only while the task is done.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Priority    TaskPriority
	Status      TaskStatus
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}
