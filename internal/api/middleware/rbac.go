package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learning-platform/internal/api/metrics"
	"github.com/learnhub/learning-platform/internal/core/domain"
	"github.com/learnhub/learning-platform/internal/core/ports"
)

// RBAC enforces role-based access control on the identity set by Auth.
// With no roles every authenticated identity is allowed.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				metrics.AccessDecisionsTotal.WithLabelValues(metrics.DecisionUnauthorized).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, MsgNoToken).SetInternal(domain.ErrUnauthorized)
			}
			if len(allowed) > 0 {
				if _, ok := allowed[id.Role]; !ok {
					metrics.AccessDecisionsTotal.WithLabelValues(metrics.DecisionForbidden).Inc()
					return echo.NewHTTPError(http.StatusForbidden, MsgForbidden).SetInternal(domain.ErrForbidden)
				}
			}
			metrics.AccessDecisionsTotal.WithLabelValues(metrics.DecisionAuthorized).Inc()
			return next(c)
		}
	}
}

// Protect chains Auth and RBAC: authenticate the bearer token, then require
// one of allowedRoles (any role when empty).
func Protect(verifier ports.TokenVerifier, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	authn := Auth(verifier)
	authz := RBAC(allowedRoles...)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return authn(authz(next))
	}
}
