package ports

import (
	"context"

	"github.com/smarttask/task-system/internal/core/domain"
)

type AuthService interface {
	// Signup registers a new employee account. The role is fixed; callers
	// cannot self-provision admins.
	Signup(ctx context.Context, name, email, secret string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token. Unknown
	// email and wrong password are indistinguishable in the returned error.
	Login(ctx context.Context, email, secret string) (string, *domain.User, error)
	// EnsureDefaultAdmin creates the well-known admin account if no admin
	// exists yet. Idempotent; invoked once at startup.
	EnsureDefaultAdmin(ctx context.Context) error
}
