package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learning-platform/internal/api/middleware"
	"github.com/learnhub/learning-platform/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A missing
// identity means the route was mounted without the gate; reject with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || id.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, middleware.MsgNoToken)
	}
	return id, nil
}
