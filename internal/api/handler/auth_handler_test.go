package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smarttask/task-system/internal/core/domain"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, name, email, secret string) (*domain.User, error)
	loginFn  func(ctx context.Context, email, secret string) (string, *domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, secret string) (*domain.User, error) {
	return s.signupFn(ctx, name, email, secret)
}

func (s *stubAuthService) Login(ctx context.Context, email, secret string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, secret)
}

func (s *stubAuthService) EnsureDefaultAdmin(context.Context) error { return nil }

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(_ context.Context, name, email, secret string) (*domain.User, error) {
			if name != "alice" || email != "alice@example.com" || secret != "pass123" {
				t.Fatalf("unexpected args: %s %s %s", name, email, secret)
			}
			return &domain.User{ID: "u1", Name: name, Email: email, Role: domain.RoleEmployee}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, _ := newAuthContext(t, `{"name":"alice","email":"alice@example.com","password":"pass123"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Role != domain.RoleEmployee {
		t.Fatalf("unexpected role: %s", resp.Role)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		signupFn: func(context.Context, string, string, string) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	c, rec, e := newAuthContext(t, `{"name":"alice","email":"not-an-email","password":"x"}`)
	if err := h.Signup(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, secret string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "u1", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec, _ := newAuthContext(t, `{"email":"admin@test.com","password":"admin"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.JWT != "signed-token" || resp.UserID != "u1" || resp.UserRole != domain.RoleAdmin {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _, _ := newAuthContext(t, `{"email":"admin@test.com","password":"nope"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to pass through, got %v", err)
	}
}
