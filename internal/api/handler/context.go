package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarttask/task-system/internal/api/middleware"
	"github.com/smarttask/task-system/internal/core/domain"
)

// currentPrincipal returns the principal attached by the request gate.
// Handlers behind the access policy can rely on it being present; absence
// means the route was registered outside the gated group, which is a wiring
// bug, not a client error.
func currentPrincipal(c echo.Context) (*domain.User, error) {
	user := middleware.Principal(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication principal")
	}
	return user, nil
}
