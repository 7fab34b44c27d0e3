package middleware

import (
	"net/http"
	"strings"

	"wortschatz/internal/config"
	"wortschatz/internal/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	// TokenCookieName is the HttpOnly cookie carrying the session token
	// in cookie transport mode
	TokenCookieName = "token"

	// UsernameContextKey is where the authenticated username is stored on
	// the echo context. It is the only owner key handlers may trust;
	// client-supplied username fields are ignored.
	UsernameContextKey = "username"
)

// Auth rejects requests that do not carry a valid session token. The token
// is read from the cookie or the Authorization header depending on the
// configured transport mode.
func Auth(authService *service.AuthService, transport string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c, transport)

			username, err := authService.VerifyToken(token)
			if err != nil {
				logger.Debug("Rejected unauthenticated request",
					zap.String("path", c.Request().URL.Path),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			c.Set(UsernameContextKey, username)
			return next(c)
		}
	}
}

func extractToken(c echo.Context, transport string) string {
	if transport == config.TransportHeader {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return ""
		}
		return strings.TrimSpace(auth[len(prefix):])
	}

	cookie, err := c.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
