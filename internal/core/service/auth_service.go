package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/smarttask/task-system/internal/core/domain"
	"github.com/smarttask/task-system/internal/core/ports"
	"github.com/smarttask/task-system/internal/core/token"
	"github.com/smarttask/task-system/internal/pkg/password"
)

// DefaultAdmin describes the bootstrap account created when no admin exists.
type DefaultAdmin struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements signup, login, and the startup admin bootstrap.
type AuthService struct {
	users ports.UserRepository
	codec *token.Codec
	audit ports.AuditSink // optional
	admin DefaultAdmin
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, audit ports.AuditSink, admin DefaultAdmin, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, audit: audit, admin: admin, log: log}
}

func (s *AuthService) Signup(ctx context.Context, name, email, secret string) (*domain.User, error) {
	if name == "" || email == "" || secret == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		s.record(email, "signup", "duplicate_email")
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(secret)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(email, "signup", "success")
	return created, nil
}

// Login verifies the (email, secret) pair and issues a bearer token with the
// email as subject. The two failure causes share one error so callers cannot
// probe which accounts exist. No lockout or attempt counting happens here.
func (s *AuthService) Login(ctx context.Context, email, secret string) (string, *domain.User, error) {
	if email == "" || secret == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(email, "login", "unknown_email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(secret, user.PasswordHash) {
		s.record(email, "login", "wrong_password")
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	s.record(email, "login", "success")
	return signed, user, nil
}

// EnsureDefaultAdmin guarantees a privileged account exists. Guarded by an
// existence check so repeated boots do not create duplicates.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	if _, err := s.users.FindByRole(ctx, domain.RoleAdmin); err == nil {
		s.log.Debug().Msg("admin account already exists")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := password.Hash(s.admin.Password)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, &domain.User{
		Name:         s.admin.Name,
		Email:        s.admin.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrUserExists) {
		// Lost a race with a concurrent boot; the account exists either way.
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("email", s.admin.Email).Msg("default admin account created")
	return nil
}

func (s *AuthService) record(email, action, result string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuthEvent{Email: email, Action: action, Result: result, At: time.Now().UTC()})
}
