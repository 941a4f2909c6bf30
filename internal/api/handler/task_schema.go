package handler

import "time"

// --- Request / Response types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	DueDate     string `json:"dueDate"     validate:"required,datetime=2006-01-02"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}

// updateTaskRequest uses pointer fields to distinguish "absent" from
// "explicitly set to a zero value": only non-nil fields are applied.
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"     validate:"omitempty,datetime=2006-01-02"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending completed"`
}

// taskResponse is the JSON shape of a single task.
type taskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type taskEnvelope struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

type taskListEnvelope struct {
	Message string         `json:"message"`
	Tasks   []taskResponse `json:"tasks"`
}
