package service

import (
	"context"
	"time"

	"github.com/smarttask/task-system/internal/core/domain"
	"github.com/smarttask/task-system/internal/core/ports"
)

// TaskService implements task, comment, and employee-listing operations for
// both the admin and employee surfaces. Authorization happens before the
// service is reached; methods trust their caller's role.
type TaskService struct {
	users    ports.UserRepository
	tasks    ports.TaskRepository
	comments ports.CommentRepository
}

func NewTaskService(users ports.UserRepository, tasks ports.TaskRepository, comments ports.CommentRepository) *TaskService {
	return &TaskService{users: users, tasks: tasks, comments: comments}
}

func (s *TaskService) CreateTask(ctx context.Context, in ports.TaskInput) (*domain.Task, error) {
	if in.Title == "" || in.AssigneeID == "" {
		return nil, domain.ErrInvalidInput
	}

	assignee, err := s.users.FindByID(ctx, in.AssigneeID)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:        in.Title,
		Description:  in.Description,
		DueDate:      in.DueDate,
		Priority:     in.Priority,
		Status:       domain.StatusInProgress,
		AssigneeID:   assignee.ID,
		AssigneeName: assignee.Name,
		CreatedAt:    time.Now().UTC(),
	}

	return s.tasks.Create(ctx, task)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, in ports.TaskInput) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignee, err := s.users.FindByID(ctx, in.AssigneeID)
	if err != nil {
		return nil, err
	}

	task.Title = in.Title
	task.Description = in.Description
	task.DueDate = in.DueDate
	task.Priority = in.Priority
	task.Status = domain.ParseTaskStatus(in.Status)
	task.AssigneeID = assignee.ID
	task.AssigneeName = assignee.Name

	return s.tasks.Update(ctx, task)
}

// DeleteTask removes the task and cascades to its comments.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return s.comments.DeleteByTask(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.FindAll(ctx)
}

func (s *TaskService) SearchTasks(ctx context.Context, title string) ([]domain.Task, error) {
	return s.tasks.SearchByTitle(ctx, title)
}

func (s *TaskService) ListEmployees(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleEmployee)
}

func (s *TaskService) ListTasksForAssignee(ctx context.Context, assigneeID string) ([]domain.Task, error) {
	if assigneeID == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.tasks.FindByAssignee(ctx, assigneeID)
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = domain.ParseTaskStatus(status)
	return s.tasks.Update(ctx, task)
}

func (s *TaskService) AddComment(ctx context.Context, taskID string, author *domain.User, content string) (*domain.Comment, error) {
	if author == nil {
		return nil, domain.ErrUserNotFound
	}
	if content == "" {
		return nil, domain.ErrInvalidInput
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:     task.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	return s.comments.Create(ctx, comment)
}

func (s *TaskService) ListComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.comments.FindByTask(ctx, taskID)
}
