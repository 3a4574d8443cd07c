package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	"github.com/buildloghq/buildlog-backend/internal/middleware"
	"github.com/buildloghq/buildlog-backend/internal/usecase"
)

// AppHandler handles the owner-side app, update and deployment requests.
type AppHandler struct {
	appUseCase    *usecase.AppUseCase
	githubUseCase *usecase.GitHubUseCase
	logger        *zap.Logger
}

// NewAppHandler creates a new app handler instance.
func NewAppHandler(appUseCase *usecase.AppUseCase, githubUseCase *usecase.GitHubUseCase, logger *zap.Logger) *AppHandler {
	return &AppHandler{
		appUseCase:    appUseCase,
		githubUseCase: githubUseCase,
		logger:        logger,
	}
}

// Create handles POST /api/v1/apps.
func (h *AppHandler) Create(c echo.Context) error {
	var req dto.CreateAppRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	app, err := h.appUseCase.Create(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, app)
}

// List handles GET /api/v1/apps.
func (h *AppHandler) List(c echo.Context) error {
	apps, err := h.appUseCase.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, apps)
}

// Get handles GET /api/v1/apps/:slug.
func (h *AppHandler) Get(c echo.Context) error {
	app, err := h.appUseCase.Get(c.Request().Context(), middleware.UserID(c), c.Param("slug"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, app)
}

// Update handles PATCH /api/v1/apps/:slug.
func (h *AppHandler) Update(c echo.Context) error {
	var req dto.UpdateAppRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	app, err := h.appUseCase.Update(c.Request().Context(), middleware.UserID(c), c.Param("slug"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /api/v1/apps/:slug.
func (h *AppHandler) Delete(c echo.Context) error {
	if err := h.appUseCase.Delete(c.Request().Context(), middleware.UserID(c), c.Param("slug")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /api/v1/apps/stats.
func (h *AppHandler) Stats(c echo.Context) error {
	stats, err := h.appUseCase.Stats(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// CreateUpdate handles POST /api/v1/apps/:slug/updates.
func (h *AppHandler) CreateUpdate(c echo.Context) error {
	var req dto.CreateUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	update, err := h.appUseCase.AddUpdate(c.Request().Context(), middleware.UserID(c), c.Param("slug"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, update)
}

// ListUpdates handles GET /api/v1/apps/:slug/updates.
func (h *AppHandler) ListUpdates(c echo.Context) error {
	updates, err := h.appUseCase.ListUpdates(c.Request().Context(), middleware.UserID(c), c.Param("slug"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, updates)
}

// DeleteUpdate handles DELETE /api/v1/apps/:slug/updates/:id.
func (h *AppHandler) DeleteUpdate(c echo.Context) error {
	err := h.appUseCase.DeleteUpdate(c.Request().Context(), middleware.UserID(c), c.Param("slug"), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateDeployment handles POST /api/v1/apps/:slug/deployments.
func (h *AppHandler) CreateDeployment(c echo.Context) error {
	var req dto.CreateDeploymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	deployment, err := h.appUseCase.AddDeployment(c.Request().Context(), middleware.UserID(c), c.Param("slug"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusCreated, deployment)
}

// ListDeployments handles GET /api/v1/apps/:slug/deployments.
func (h *AppHandler) ListDeployments(c echo.Context) error {
	deployments, err := h.appUseCase.ListDeployments(c.Request().Context(), middleware.UserID(c), c.Param("slug"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, deployments)
}

// DeleteDeployment handles DELETE /api/v1/apps/:slug/deployments/:id.
func (h *AppHandler) DeleteDeployment(c echo.Context) error {
	err := h.appUseCase.DeleteDeployment(c.Request().Context(), middleware.UserID(c), c.Param("slug"), c.Param("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GitHubInsights handles GET /api/v1/apps/:slug/github.
func (h *AppHandler) GitHubInsights(c echo.Context) error {
	app, err := h.appUseCase.Get(c.Request().Context(), middleware.UserID(c), c.Param("slug"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	if app.GithubURL == nil || *app.GithubURL == "" {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "App has no GitHub repository configured",
			"code":  "NO_GITHUB_REPO",
		})
	}

	insights, err := h.githubUseCase.GetInsights(c.Request().Context(), *app.GithubURL)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, insights)
}
