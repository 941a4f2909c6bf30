package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studytrack/task-api/internal/api/metrics"
	"github.com/studytrack/task-api/internal/core/ports"
)

// TaskHandler handles the task CRUD endpoints. All routes are behind the
// Session middleware; the owner id always comes from the verified token,
// never from the request body.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /api/tasks/create-task.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /tasks/create-task [post]
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), userID, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Priority)).Inc()
	return c.JSON(http.StatusCreated, taskEnvelope{
		Message: "Task created successfully",
		Task:    toTaskResponse(*task),
	})
}

// List handles GET /api/tasks/get-tasks.
//
// @Summary      List the current user's tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  taskListEnvelope
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /tasks/get-tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, taskListEnvelope{
		Message: "Tasks fetched successfully",
		Tasks:   toTaskListResponse(tasks),
	})
}

// Update handles PUT /api/tasks/update-task/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  taskEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /tasks/update-task/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, taskEnvelope{
		Message: "Task updated successfully",
		Task:    toTaskResponse(*task),
	})
}

// Delete handles DELETE /api/tasks/delete-task/:id.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /tasks/delete-task/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.TasksDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Task deleted successfully"})
}
