package domain

import (
	"errors"
	"time"
)

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskStatus is the completion state of a task. The only transitions are
// pending ⇄ completed, always via an explicit update.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

var (
	ErrInvalidTaskID = errors.New("invalid task id")
	ErrInvalidTask   = errors.New("title, description and due date are required")
	ErrTaskNotFound  = errors.New("task not found")
)

// Task is a single to-do item owned by exactly one user. Visibility and
// mutation are always scoped to UserID on the server side.
type Task struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     string       `json:"dueDate"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Valid reports whether p is a known priority.
func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}
