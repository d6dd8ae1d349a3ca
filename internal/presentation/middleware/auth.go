package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/apperr"
	"folio/internal/domain/dto"
	"folio/internal/presentation"
)

// AdminAuth gates mutating endpoints behind the single admin identity.
// It tries the session cookie first, then the bearer token; either
// credential alone is enough.
func AdminAuth(auth abstraction.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := auth.Authenticate(c.Request().Context(), SessionID(c), BearerToken(c))
			if err != nil {
				status, message := apperr.Client(err, false)

				return c.JSON(status, dto.Fail(message))
			}

			c.Set(presentation.KeyUser, user)

			return next(c)
		}
	}
}

// SessionID extracts the session cookie value, "" when absent.
func SessionID(c echo.Context) string {
	cookie, err := c.Cookie(presentation.SessionCookie)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// BearerToken extracts the Authorization bearer token, "" when absent.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}

	return ""
}

// NewSessionCookie builds the httpOnly login cookie.
func NewSessionCookie(sessionID string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     presentation.SessionCookie,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
