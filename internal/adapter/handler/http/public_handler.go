package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/usecase"
)

// PublicHandler handles every request arriving with a share code instead
// of a session. All authorization happens in the usecase gate.
type PublicHandler struct {
	publicUseCase *usecase.PublicUseCase
	logger        *zap.Logger
}

// NewPublicHandler creates a new public handler instance.
func NewPublicHandler(publicUseCase *usecase.PublicUseCase, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{
		publicUseCase: publicUseCase,
		logger:        logger,
	}
}

// GetApp handles GET /api/v1/public/:code.
func (h *PublicHandler) GetApp(c echo.Context) error {
	view, err := h.publicUseCase.GetAppView(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, view)
}

// ListFeedback handles GET /api/v1/public/:code/feedback.
func (h *PublicHandler) ListFeedback(c echo.Context) error {
	items, err := h.publicUseCase.ListFeedback(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, items)
}

// PostFeedback handles POST /api/v1/public/:code/feedback.
func (h *PublicHandler) PostFeedback(c echo.Context) error {
	var req dto.CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	feedback, err := h.publicUseCase.PostFeedback(c.Request().Context(), c.Param("code"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, feedback)
}

// ListTasks handles GET /api/v1/public/:code/tasks.
func (h *PublicHandler) ListTasks(c echo.Context) error {
	tasks, err := h.publicUseCase.ListTasks(c.Request().Context(), c.Param("code"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// PostTask handles POST /api/v1/public/:code/tasks.
func (h *PublicHandler) PostTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	task, err := h.publicUseCase.PostTask(c.Request().Context(), c.Param("code"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, task)
}
