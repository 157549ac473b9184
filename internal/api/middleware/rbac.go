package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smarttask/task-system/internal/core/domain"
)

// Rule role markers, alongside the concrete domain roles.
const (
	RolePublic = "PUBLIC" // no principal required
	RoleAny    = "ANY"    // any authenticated principal
)

// AccessRule binds a route prefix to the role required to enter it. The
// table is fixed at startup and shared read-only across requests.
type AccessRule struct {
	Prefix string
	Role   string
}

// DefaultRules is the process-wide access table. Admission picks the
// longest matching prefix, so rule order does not matter.
func DefaultRules() []AccessRule {
	return []AccessRule{
		{Prefix: "/api/auth", Role: RolePublic},
		{Prefix: "/api/admin", Role: domain.RoleAdmin},
		{Prefix: "/api/employee", Role: domain.RoleEmployee},
		{Prefix: "/", Role: RoleAny},
	}
}

// Admit decides whether principal may reach path under rules. It is a pure
// function of its arguments: nil principal means unauthenticated. A path
// matching no rule fails closed (authenticated access only).
func Admit(rules []AccessRule, path string, principal *domain.User) error {
	var matched *AccessRule
	for i := range rules {
		rule := &rules[i]
		if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}
		if matched == nil || len(rule.Prefix) > len(matched.Prefix) {
			matched = rule
		}
	}

	role := RoleAny
	if matched != nil {
		role = matched.Role
	}

	switch {
	case role == RolePublic:
		return nil
	case principal == nil:
		return domain.ErrUnauthenticated
	case role == RoleAny:
		return nil
	case principal.Role != role:
		return domain.ErrForbidden
	default:
		return nil
	}
}

// Authorize enforces the access rules against the principal attached by
// Authenticate. It must run after the gate; the typed errors it returns are
// rendered as 401/403 by the central error handler.
func Authorize(rules []AccessRule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := Admit(rules, c.Request().URL.Path, Principal(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}
