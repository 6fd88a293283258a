package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/controller"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/core/utils"
)

// Middleware bundles the cross-cutting echo middlewares.
type Middleware struct {
	cache cache.ICache
}

func New(c cache.ICache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware validates the Bearer token and stores its claims under
// constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}
			raw := parts[1]

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), raw)
				if err != nil {
					// Cache outage must not lock users out.
					logger.Warn("Middleware:AuthMiddleware:BlacklistCheckFailed", "error", err)
				} else if blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			claims, err := utils.ValidateAndParseToken(raw)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken", "error", err)
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireOrganizer rejects requests whose token is not an organizer token.
func (m *Middleware) RequireOrganizer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok || claims.Role != constants.RoleOrganizer {
				return controller.NewErrorResponse(403, errors.ErrForbidden, "Organizer role required")
			}
			return next(c)
		}
	}
}
