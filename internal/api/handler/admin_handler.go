package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarttask/task-system/internal/api/metrics"
	"github.com/smarttask/task-system/internal/core/ports"
)

// AdminHandler serves the /api/admin surface: full task lifecycle, employee
// listing, and comments on any task.
type AdminHandler struct {
	taskService ports.TaskService
}

func NewAdminHandler(taskService ports.TaskService) *AdminHandler {
	return &AdminHandler{taskService: taskService}
}

// ListUsers returns every employee account (admins excluded).
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.taskService.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// CreateTask assigns a new task to an employee. New tasks start INPROGRESS.
//
// @Summary      Create a task
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      taskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/task [post]
func (h *AdminHandler) CreateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), toTaskInput(req))
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(task.Priority).Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// ListTasks returns every task, ordered by due date, newest first.
//
// @Summary      List all tasks
// @Tags         admin
// @Produce      json
// @Success      200  {array}  taskResponse
// @Router       /api/admin/tasks [get]
func (h *AdminHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

func (h *AdminHandler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *AdminHandler) UpdateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), toTaskInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

func (h *AdminHandler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// SearchTasks matches tasks whose title contains the given fragment,
// case-insensitively.
func (h *AdminHandler) SearchTasks(c echo.Context) error {
	tasks, err := h.taskService.SearchTasks(c.Request().Context(), c.Param("title"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// CreateComment adds a comment authored by the calling admin. The content
// arrives as a query parameter, matching the original API contract.
func (h *AdminHandler) CreateComment(c echo.Context) error {
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

func (h *AdminHandler) ListComments(c echo.Context) error {
	comments, err := h.taskService.ListComments(c.Request().Context(), c.Param("taskId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponses(comments))
}
