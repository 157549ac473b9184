package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "INPROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusDeferred   TaskStatus = "DEFERRED"
	StatusCancelled  TaskStatus = "CANCELLED"
)

var ErrTaskNotFound = errors.New("task not found")

// ParseTaskStatus maps a raw status string to a TaskStatus. Unknown values
// collapse to CANCELLED.
func ParseTaskStatus(s string) TaskStatus {
	switch TaskStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDeferred:
		return TaskStatus(s)
	default:
		return StatusCancelled
	}
}

// Task is a unit of work assigned to an employee.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      time.Time  `json:"due_date"`
	Priority     string     `json:"priority"`
	Status       TaskStatus `json:"status"`
	AssigneeID   string     `json:"assignee_id"`
	AssigneeName string     `json:"assignee_name"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Comment is a note left on a task by an admin or employee.
type Comment struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
