package ports

import (
	"context"

	"github.com/studytrack/task-api/internal/core/domain"
)

// CreateTaskInput carries the fields of a task creation request.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     string
	// Priority is optional; empty means domain.PriorityLow.
	Priority domain.TaskPriority
}

// TaskService defines the task use cases. Every operation takes the id of
// the authenticated user and only ever touches that user's tasks.
type TaskService interface {
	Create(ctx context.Context, userID string, in CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, userID, taskID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}
