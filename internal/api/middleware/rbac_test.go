package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smarttask/task-system/internal/core/domain"
)

func TestAdmit(t *testing.T) {
	rules := DefaultRules()
	admin := &domain.User{ID: "u1", Role: domain.RoleAdmin}
	employee := &domain.User{ID: "u2", Role: domain.RoleEmployee}

	tests := []struct {
		name      string
		path      string
		principal *domain.User
		want      error
	}{
		{"public route unauthenticated", "/api/auth/login", nil, nil},
		{"public route with principal", "/api/auth/signup", employee, nil},
		{"admin route as admin", "/api/admin/tasks", admin, nil},
		{"admin route as employee is forbidden", "/api/admin/tasks", employee, domain.ErrForbidden},
		{"admin route unauthenticated", "/api/admin/tasks", nil, domain.ErrUnauthenticated},
		{"employee route as employee", "/api/employee/tasks", employee, nil},
		{"employee route as admin is forbidden", "/api/employee/tasks", admin, domain.ErrForbidden},
		{"employee route unauthenticated", "/api/employee/tasks", nil, domain.ErrUnauthenticated},
		{"other route needs any principal", "/api/profile", employee, nil},
		{"other route unauthenticated", "/api/profile", nil, domain.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Admit(rules, tt.path, tt.principal)
			if !errors.Is(got, tt.want) {
				t.Fatalf("Admit(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestAdmit_LongestPrefixWins(t *testing.T) {
	// Rule order must not matter; the most specific prefix decides.
	rules := []AccessRule{
		{Prefix: "/", Role: RoleAny},
		{Prefix: "/api/admin/reports", Role: domain.RoleAdmin},
		{Prefix: "/api", Role: RolePublic},
	}

	if err := Admit(rules, "/api/anything", nil); err != nil {
		t.Fatalf("expected public admission, got %v", err)
	}
	if err := Admit(rules, "/api/admin/reports/daily", nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	employee := &domain.User{Role: domain.RoleEmployee}
	if err := Admit(rules, "/api/admin/reports/daily", employee); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAdmit_NoMatchFailsClosed(t *testing.T) {
	rules := []AccessRule{{Prefix: "/api/auth", Role: RolePublic}}

	if err := Admit(rules, "/internal/debug", nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := Admit(rules, "/internal/debug", &domain.User{Role: domain.RoleEmployee}); err != nil {
		t.Fatalf("expected admission for authenticated principal, got %v", err)
	}
}

func TestAuthorize_Middleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(principalKey, &domain.User{Role: domain.RoleAdmin})

	called := false
	mw := Authorize(DefaultRules())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthorize_ForbiddenAndUnauthenticated(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/tasks", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(principalKey, &domain.User{Role: domain.RoleEmployee})

	mw := Authorize(DefaultRules())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/admin/tasks", nil), httptest.NewRecorder())
	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
