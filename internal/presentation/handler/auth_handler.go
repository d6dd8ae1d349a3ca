package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"folio/internal/application/usecase/abstraction"
	"folio/internal/domain/dto"
	"folio/internal/presentation/middleware"
	"folio/pkg/logger"
)

type AuthHandler struct {
	auth         abstraction.Authenticator
	cookieMaxAge int
	secureCookie bool
	dev          bool
}

func NewAuthHandler(auth abstraction.Authenticator, cookieMaxAge int, secureCookie, dev bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		cookieMaxAge: cookieMaxAge,
		secureCookie: secureCookie,
		dev:          dev,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail("Username and password are required"))
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login rejected", "username", req.Username, "error", err)

		return fail(c, err, h.dev)
	}

	c.SetCookie(middleware.NewSessionCookie(result.SessionID, h.cookieMaxAge, h.secureCookie))

	return c.JSON(http.StatusOK, dto.OKMessage("Login successful", map[string]any{
		"token": result.Token,
		"user":  result.User,
	}))
}

// HandleLogout handles POST /api/auth/logout requests.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		logger.Error("session destroy failed", "error", err)

		return c.JSON(http.StatusInternalServerError, dto.Fail("Could not log out"))
	}

	c.SetCookie(middleware.NewSessionCookie("", -1, h.secureCookie))

	return c.JSON(http.StatusOK, dto.OKMessage("Logged out successfully", nil))
}

// HandleStatus handles GET /api/auth/status requests. It never errors
// toward the client: an absent or expired session is simply reported as
// unauthenticated.
func (h *AuthHandler) HandleStatus(c echo.Context) error {
	user, err := h.auth.SessionUser(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		logger.Error("session lookup failed", "error", err)
	}

	if user == nil {
		return c.JSON(http.StatusOK, map[string]any{
			"success":       true,
			"authenticated": false,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"authenticated": true,
		"user":          user,
	})
}

// HandleVerify handles POST /api/auth/verify requests.
func (h *AuthHandler) HandleVerify(c echo.Context) error {
	token := middleware.BearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, dto.Fail("No token provided"))
	}

	user, err := h.auth.VerifyToken(token)
	if err != nil {
		return fail(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, dto.OK(user))
}
