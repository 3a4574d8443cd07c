package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/middleware"
	"github.com/buildloghq/buildlog-backend/internal/usecase"
)

// ShareHandler handles the owner-side share link management requests.
type ShareHandler struct {
	shareLinkUseCase *usecase.ShareLinkUseCase
	logger           *zap.Logger
}

// NewShareHandler creates a new share handler instance.
func NewShareHandler(shareLinkUseCase *usecase.ShareLinkUseCase, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{
		shareLinkUseCase: shareLinkUseCase,
		logger:           logger,
	}
}

// Create handles POST /api/v1/apps/:slug/share.
func (h *ShareHandler) Create(c echo.Context) error {
	var req dto.CreateShareLinkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	link, err := h.shareLinkUseCase.Create(c.Request().Context(), middleware.UserID(c), c.Param("slug"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, link)
}

// List handles GET /api/v1/apps/:slug/share.
func (h *ShareHandler) List(c echo.Context) error {
	links, err := h.shareLinkUseCase.ListForApp(c.Request().Context(), middleware.UserID(c), c.Param("slug"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, links)
}

// Get handles GET /api/v1/share/:code.
func (h *ShareHandler) Get(c echo.Context) error {
	link, err := h.shareLinkUseCase.Get(c.Request().Context(), middleware.UserID(c), c.Param("code"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, dto.ShareLinkResponse{
		ShareLink: *link,
		ShareURL:  h.shareLinkUseCase.ShareURL(link.Code),
	})
}

// Revoke handles DELETE /api/v1/share/:code. Revocation cascades: feedback
// and tasks admitted through the code are deleted with it.
func (h *ShareHandler) Revoke(c echo.Context) error {
	if err := h.shareLinkUseCase.Revoke(c.Request().Context(), middleware.UserID(c), c.Param("code")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}
