package ports

import (
	"context"

	"github.com/smarttask/task-system/internal/core/domain"
)

// UserRepository is the persistence surface for principals.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByRole returns any one user holding the role, or
	// domain.ErrUserNotFound when none exists.
	FindByRole(ctx context.Context, role string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
}

// PrincipalResolver is the narrow lookup the request gate performs on every
// authenticated request: token subject (email) to principal. Kept separate
// from UserRepository so the hot path can sit behind a cache while login and
// signup keep reading the store directly.
type PrincipalResolver interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
