package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learning-platform/internal/api/metrics"
	"github.com/learnhub/learning-platform/internal/core/domain"
	"github.com/learnhub/learning-platform/internal/core/ports"
)

// IdentityKey is the echo context key holding the verified domain.Identity.
const IdentityKey = "identity"

const bearerPrefix = "Bearer "

// Messages returned by the access gate.
const (
	MsgNoToken      = "Unauthorized: No token provided"
	MsgInvalidToken = "Unauthorized: Invalid token"
	MsgForbidden    = "Forbidden: Insufficient role"
)

// Auth validates the bearer token and injects the identity into both the echo
// context and the request context. It never consults the user store.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)
			if !ok {
				metrics.AccessDecisionsTotal.WithLabelValues(metrics.DecisionUnauthorized).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, MsgNoToken).SetInternal(domain.ErrUnauthorized)
			}

			id, err := verifier.Verify(raw)
			if err != nil {
				metrics.AccessDecisionsTotal.WithLabelValues(metrics.DecisionUnauthorized).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, MsgInvalidToken).SetInternal(err)
			}

			c.Set(IdentityKey, id)
			c.SetRequest(c.Request().WithContext(domain.WithIdentity(c.Request().Context(), id)))

			return next(c)
		}
	}
}
