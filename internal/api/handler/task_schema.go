package handler

import "time"

// taskRequest carries the writable task fields. Priority and status are
// free-form strings; unknown statuses collapse to CANCELLED downstream.
type taskRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	TaskStatus  string    `json:"taskStatus"`
	EmployeeID  string    `json:"employeeId" validate:"required"`
}

type taskResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      time.Time `json:"dueDate"`
	Priority     string    `json:"priority"`
	TaskStatus   string    `json:"taskStatus"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	PostedBy  string    `json:"postedBy"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"userRole"`
}
