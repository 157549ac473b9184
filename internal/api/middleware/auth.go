package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smarttask/task-system/internal/api/metrics"
	"github.com/smarttask/task-system/internal/core/domain"
	"github.com/smarttask/task-system/internal/core/ports"
	"github.com/smarttask/task-system/internal/core/token"
)

const (
	principalKey = "principal"
	bearerPrefix = "Bearer "
)

// Authenticate is the request gate: it turns a bearer token into an attached
// principal, and nothing more. It never rejects a request: a missing
// header, an invalid or expired token, and a stale subject all pass through
// unauthenticated, leaving admission to the access policy. Why a token was
// rejected is recorded in metrics and logs only, never in the response.
//
// Running the gate twice on one request is a no-op: an already attached
// principal is left untouched.
func Authenticate(codec *token.Codec, principals ports.PrincipalResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Get(principalKey) != nil {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			subject, err := codec.Validate(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
				log.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("bearer token rejected")
				return next(c)
			}

			user, err := principals.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenValidationsTotal.WithLabelValues("principal_not_found").Inc()
				} else {
					log.Error().Err(err).Msg("principal lookup failed")
				}
				return next(c)
			}

			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// Principal returns the principal attached by Authenticate, or nil when the
// request is unauthenticated.
func Principal(c echo.Context) *domain.User {
	user, _ := c.Get(principalKey).(*domain.User)
	return user
}

func validationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "signature_invalid"
	default:
		return "malformed"
	}
}
