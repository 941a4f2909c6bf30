package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/studytrack/task-api/internal/core/domain"
	"github.com/studytrack/task-api/internal/core/ports"
)

// TaskListCache abstracts the per-user task-list read cache (Redis).
// Cache failures are never fatal: the service logs them and falls through
// to the repository.
type TaskListCache interface {
	// Get returns the cached list for userID and whether it was present.
	Get(ctx context.Context, userID string) ([]domain.Task, bool, error)
	Set(ctx context.Context, userID string, tasks []domain.Task) error
	Invalidate(ctx context.Context, userID string) error
}

// TaskService implements the task CRUD use cases, always scoped to the
// authenticated user.
type TaskService struct {
	repo  ports.TaskRepository
	cache TaskListCache
	log   zerolog.Logger
}

// NewTaskService returns a TaskService. cache may be nil, which disables
// list caching entirely.
func NewTaskService(repo ports.TaskRepository, cache TaskListCache, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, cache: cache, log: log}
}

func (s *TaskService) Create(ctx context.Context, userID string, in ports.CreateTaskInput) (*domain.Task, error) {
	if in.Title == "" || in.Description == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidTask
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityLow
	}
	if !priority.Valid() {
		return nil, domain.ErrInvalidTask
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    priority,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	s.dropCachedList(ctx, userID)
	s.log.Info().Str("task_id", created.ID).Str("user_id", userID).Msg("task created")
	return created, nil
}

func (s *TaskService) List(ctx context.Context, userID string) ([]domain.Task, error) {
	if s.cache != nil {
		tasks, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("task list cache read failed")
		} else if ok {
			return tasks, nil
		}
	}

	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, tasks); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("task list cache write failed")
		}
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch ports.TaskPatch) (*domain.Task, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, domain.ErrInvalidTask
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.ErrInvalidTask
	}

	updated, err := s.repo.UpdateOwned(ctx, userID, taskID, patch)
	if err != nil {
		return nil, err
	}

	s.dropCachedList(ctx, userID)
	s.log.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task updated")
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if err := s.repo.DeleteOwned(ctx, userID, taskID); err != nil {
		return err
	}

	s.dropCachedList(ctx, userID)
	s.log.Info().Str("task_id", taskID).Str("user_id", userID).Msg("task deleted")
	return nil
}

func (s *TaskService) dropCachedList(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("task list cache invalidation failed")
	}
}
