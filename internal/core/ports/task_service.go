package ports

import (
	"context"
	"time"

	"github.com/smarttask/task-system/internal/core/domain"
)

// TaskInput carries the writable fields of a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
	AssigneeID  string
}

type TaskService interface {
	CreateTask(ctx context.Context, in TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, in TaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) ([]domain.Task, error)
	SearchTasks(ctx context.Context, title string) ([]domain.Task, error)
	ListEmployees(ctx context.Context) ([]domain.User, error)

	ListTasksForAssignee(ctx context.Context, assigneeID string) ([]domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id, status string) (*domain.Task, error)

	AddComment(ctx context.Context, taskID string, author *domain.User, content string) (*domain.Comment, error)
	ListComments(ctx context.Context, taskID string) ([]domain.Comment, error)
}
