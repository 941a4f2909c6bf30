package ports

import (
	"context"

	"github.com/studytrack/task-api/internal/core/domain"
)

// TaskPatch carries a partial update. Nil fields are left untouched;
// non-nil fields are applied verbatim, including zero values.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *domain.TaskPriority
	Status      *domain.TaskStatus
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Status == nil
}

// TaskRepository defines persistence operations for tasks.
//
// The ownership check is part of every lookup predicate: UpdateOwned and
// DeleteOwned match on both task id and owner id in a single atomic
// operation, so a task belonging to another user is indistinguishable from
// a missing one (domain.ErrTaskNotFound either way).
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// ListByOwner returns all tasks owned by userID in storage order.
	ListByOwner(ctx context.Context, userID string) ([]domain.Task, error)
	// UpdateOwned applies patch to the task matching {id, owner} and returns
	// the updated document. Returns domain.ErrInvalidTaskID for malformed
	// ids and domain.ErrTaskNotFound when no owned task matches.
	UpdateOwned(ctx context.Context, userID, taskID string, patch TaskPatch) (*domain.Task, error)
	// DeleteOwned removes the task matching {id, owner}. Same error
	// contract as UpdateOwned.
	DeleteOwned(ctx context.Context, userID, taskID string) error
}
