package middleware

import (
	"fmt"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/ridemate/ridemate/internal/pkg/jwt"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
)

// JWTMiddleware validates bearer tokens and stores the caller's identity
// and role in the Echo context under "user_id" and "role".
func JWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(config.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) <= 7 || authHeader[:7] != "Bearer " {
				return
			}

			claims, err := jwtpkg.ValidateToken(authHeader[7:], config.Secret)
			if err != nil {
				return
			}

			if userID, ok := claims["user_id"]; ok {
				if parsed, err := uuid.Parse(fmt.Sprintf("%v", userID)); err == nil {
					c.Set("user_id", parsed)
				}
			}
			if role, ok := claims["role"]; ok {
				c.Set("role", fmt.Sprintf("%v", role))
			}
		},
	})
}

// RequireRole rejects requests whose authenticated role is not in the
// allowed set. Must run after JWTMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Missing role claim")
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}

			return utils.ForbiddenResponse(c, "Insufficient permissions")
		}
	}
}

// CallerID extracts the authenticated user ID from the Echo context
func CallerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}

// CallerRole extracts the authenticated role from the Echo context
func CallerRole(c echo.Context) string {
	if role, ok := c.Get("role").(string); ok {
		return role
	}
	return ""
}
