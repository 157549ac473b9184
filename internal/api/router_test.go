package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarttask/task-system/internal/core/domain"
	"github.com/smarttask/task-system/internal/core/ports"
	"github.com/smarttask/task-system/internal/core/token"
)

type fakeAuthService struct{}

func (fakeAuthService) Signup(_ context.Context, name, email, _ string) (*domain.User, error) {
	return &domain.User{ID: "u9", Name: name, Email: email, Role: domain.RoleEmployee}, nil
}

func (fakeAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	return "signed", &domain.User{ID: "u9", Email: email, Role: domain.RoleEmployee}, nil
}

func (fakeAuthService) EnsureDefaultAdmin(context.Context) error { return nil }

type fakeTaskService struct{}

func (fakeTaskService) CreateTask(context.Context, ports.TaskInput) (*domain.Task, error) {
	return &domain.Task{ID: "t1"}, nil
}
func (fakeTaskService) GetTask(context.Context, string) (*domain.Task, error) {
	return &domain.Task{ID: "t1"}, nil
}
func (fakeTaskService) UpdateTask(context.Context, string, ports.TaskInput) (*domain.Task, error) {
	return &domain.Task{ID: "t1"}, nil
}
func (fakeTaskService) DeleteTask(context.Context, string) error { return nil }
func (fakeTaskService) ListTasks(context.Context) ([]domain.Task, error) {
	return []domain.Task{}, nil
}
func (fakeTaskService) SearchTasks(context.Context, string) ([]domain.Task, error) {
	return []domain.Task{}, nil
}
func (fakeTaskService) ListEmployees(context.Context) ([]domain.User, error) {
	return []domain.User{}, nil
}
func (fakeTaskService) ListTasksForAssignee(context.Context, string) ([]domain.Task, error) {
	return []domain.Task{}, nil
}
func (fakeTaskService) UpdateTaskStatus(context.Context, string, string) (*domain.Task, error) {
	return &domain.Task{ID: "t1"}, nil
}
func (fakeTaskService) AddComment(context.Context, string, *domain.User, string) (*domain.Comment, error) {
	return &domain.Comment{ID: "c1"}, nil
}
func (fakeTaskService) ListComments(context.Context, string) ([]domain.Comment, error) {
	return []domain.Comment{}, nil
}

type fakeResolver struct {
	users map[string]*domain.User
}

func (r fakeResolver) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

// TestRouter_AccessPolicy drives the full gate + policy chain. A single
// router instance serves every case: the prometheus HTTP middleware
// registers collectors globally and must not be built twice.
func TestRouter_AccessPolicy(t *testing.T) {
	codec := token.NewCodec("router-test-secret", time.Hour)
	resolver := fakeResolver{users: map[string]*domain.User{
		"admin@test.com": {ID: "u1", Name: "admin", Email: "admin@test.com", Role: domain.RoleAdmin},
		"bob@example.com": {ID: "u2", Name: "bob", Email: "bob@example.com", Role: domain.RoleEmployee},
	}}

	e := NewRouter(Dependencies{
		AuthService: fakeAuthService{},
		TaskService: fakeTaskService{},
		Codec:       codec,
		Principals:  resolver,
		Log:         zerolog.Nop(),
	})

	adminToken, err := codec.Issue("admin@test.com")
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}
	employeeToken, err := codec.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("issue employee token: %v", err)
	}

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		token    string
		wantCode int
	}{
		{"admin route with admin token", http.MethodGet, "/api/admin/tasks", "", adminToken, http.StatusOK},
		{"admin route with employee token is forbidden", http.MethodGet, "/api/admin/tasks", "", employeeToken, http.StatusForbidden},
		{"admin route without token is unauthenticated", http.MethodGet, "/api/admin/tasks", "", "", http.StatusUnauthorized},
		{"employee route with employee token", http.MethodGet, "/api/employee/tasks", "", employeeToken, http.StatusOK},
		{"employee route with admin token is forbidden", http.MethodGet, "/api/employee/tasks", "", adminToken, http.StatusForbidden},
		{"public login ignores garbage bearer token", http.MethodPost, "/api/auth/login",
			`{"email":"bob@example.com","password":"pass"}`, "xyz", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("%s %s: expected %d, got %d (body: %s)", tt.method, tt.path, tt.wantCode, rec.Code, rec.Body.String())
			}
		})
	}
}
