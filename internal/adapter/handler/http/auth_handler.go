package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/middleware"
	"github.com/buildloghq/buildlog-backend/internal/usecase"
)

// AuthHandler handles owner authentication requests.
type AuthHandler struct {
	authUseCase   *usecase.AuthUseCase
	secureCookies bool
	logger        *zap.Logger
}

// NewAuthHandler creates a new auth handler instance.
func NewAuthHandler(authUseCase *usecase.AuthUseCase, secureCookies bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Login handles POST /api/v1/auth/login. On success the signed token is
// set as an HttpOnly cookie; it is never returned in the body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	token, err := h.authUseCase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.authUseCase.TokenExpiry()),
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout handles POST /api/v1/auth/logout by expiring the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Status handles GET /api/v1/auth/status. It reports whether the caller
// holds a valid session without requiring one.
func (h *AuthHandler) Status(c echo.Context) error {
	cookie, err := c.Cookie(middleware.AuthCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, dto.AuthStatus{Authenticated: false})
	}

	userID, err := h.authUseCase.VerifyToken(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusOK, dto.AuthStatus{Authenticated: false})
	}

	user, err := h.authUseCase.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusOK, dto.AuthStatus{Authenticated: false})
	}

	return c.JSON(http.StatusOK, dto.AuthStatus{
		Authenticated: true,
		UserID:        user.ID,
		Email:         user.Email,
	})
}
