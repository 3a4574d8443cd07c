package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/middleware"
	"github.com/buildloghq/buildlog-backend/internal/usecase"
)

// TaskHandler handles the owner-side task workflow requests.
type TaskHandler struct {
	taskUseCase *usecase.TaskUseCase
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler instance.
func NewTaskHandler(taskUseCase *usecase.TaskUseCase, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskUseCase: taskUseCase,
		logger:      logger,
	}
}

// ListForApp handles GET /api/v1/apps/:slug/tasks.
func (h *TaskHandler) ListForApp(c echo.Context) error {
	tasks, err := h.taskUseCase.ListForApp(c.Request().Context(), middleware.UserID(c), c.Param("slug"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// UpdateStatus handles PATCH /api/v1/tasks/:id/status.
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	task, err := h.taskUseCase.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, task)
}

// Complete handles POST /api/v1/tasks/:id/complete. The completion
// evidence is mandatory; a second completion attempt gets a conflict.
func (h *TaskHandler) Complete(c echo.Context) error {
	var req dto.CompleteTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	task, err := h.taskUseCase.Complete(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, task)
}
