package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarttask/task-system/internal/core/ports"
)

// EmployeeHandler serves the /api/employee surface: the caller's own tasks,
// status updates, and comments.
type EmployeeHandler struct {
	taskService ports.TaskService
}

func NewEmployeeHandler(taskService ports.TaskService) *EmployeeHandler {
	return &EmployeeHandler{taskService: taskService}
}

// ListMyTasks returns the tasks assigned to the calling employee.
//
// @Summary      List the caller's tasks
// @Tags         employee
// @Produce      json
// @Success      200  {array}  taskResponse
// @Router       /api/employee/tasks [get]
func (h *EmployeeHandler) ListMyTasks(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasksForAssignee(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

func (h *EmployeeHandler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateTaskStatus sets the task's status from the path segment.
func (h *EmployeeHandler) UpdateTaskStatus(c echo.Context) error {
	task, err := h.taskService.UpdateTaskStatus(c.Request().Context(), c.Param("id"), c.Param("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *EmployeeHandler) CreateComment(c echo.Context) error {
	author, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	comment, err := h.taskService.AddComment(c.Request().Context(), c.Param("taskId"), author, c.QueryParam("content"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

func (h *EmployeeHandler) ListComments(c echo.Context) error {
	comments, err := h.taskService.ListComments(c.Request().Context(), c.Param("taskId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponses(comments))
}
