package ports

import (
	"context"

	"github.com/smarttask/task-system/internal/core/domain"
)

// TaskRepository is the persistence surface for tasks. List results are
// sorted by due date, newest first.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]domain.Task, error)
	FindByAssignee(ctx context.Context, assigneeID string) ([]domain.Task, error)
	SearchByTitle(ctx context.Context, title string) ([]domain.Task, error)
}

// CommentRepository is the persistence surface for task comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	// DeleteByTask removes every comment on a task; used when the task
	// itself is deleted.
	DeleteByTask(ctx context.Context, taskID string) error
}
