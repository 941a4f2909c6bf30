package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studytrack/task-api/internal/api/metrics"
	"github.com/studytrack/task-api/internal/core/domain"
)

const taskListTTL = time.Minute

// TaskListCache caches a user's full task list as a JSON blob.
// Key format: tasks:<user_id>
//
// Entries expire after a short TTL and are invalidated on every write, so
// the worst case after a crash mid-invalidation is a briefly stale list.
type TaskListCache struct {
	client *redis.Client
}

// NewTaskListCache creates a TaskListCache wrapping the given Redis client.
func NewTaskListCache(client *redis.Client) *TaskListCache {
	return &TaskListCache{client: client}
}

// Get returns the cached list for userID and whether it was present.
func (c *TaskListCache) Get(ctx context.Context, userID string) ([]domain.Task, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.TaskListCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}

	metrics.TaskListCacheTotal.WithLabelValues("hit").Inc()
	return tasks, true, nil
}

// Set stores the list for userID, replacing any previous entry.
func (c *TaskListCache) Set(ctx context.Context, userID string, tasks []domain.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, taskListTTL).Err()
}

// Invalidate drops the cached list for userID.
func (c *TaskListCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *TaskListCache) key(userID string) string {
	return "tasks:" + userID
}
