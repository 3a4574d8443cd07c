package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthCookieName is the HttpOnly cookie carrying the owner's signed token.
const AuthCookieName = "auth_token"

// UserIDContextKey is the echo context key the middleware stores the
// verified owner ID under.
const UserIDContextKey = "user_id"

// TokenVerifier validates a signed token and returns the user ID it
// identifies.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// RequireAuth gates owner-only routes behind the auth cookie. A missing or
// invalid token is a 401; the handler never runs.
func RequireAuth(verifier TokenVerifier, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authentication required",
					"code":  "UNAUTHORIZED",
				})
			}

			userID, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.String("path", c.Request().URL.Path),
					zap.Error(err),
				)
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid or expired token",
					"code":  "UNAUTHORIZED",
				})
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated owner ID set by RequireAuth.
func UserID(c echo.Context) string {
	id, _ := c.Get(UserIDContextKey).(string)
	return id
}
