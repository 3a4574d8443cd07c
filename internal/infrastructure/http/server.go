package http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/buildloghq/buildlog-backend/internal/adapter/handler/http"
	"github.com/buildloghq/buildlog-backend/internal/config"
	"github.com/buildloghq/buildlog-backend/internal/middleware"
	"github.com/buildloghq/buildlog-backend/internal/usecase"
	"github.com/buildloghq/buildlog-backend/pkg/logger"
)

// UseCases bundles the usecase layer for injection into the server.
type UseCases struct {
	Auth      *usecase.AuthUseCase
	App       *usecase.AppUseCase
	ShareLink *usecase.ShareLinkUseCase
	Public    *usecase.PublicUseCase
	Task      *usecase.TaskUseCase
	GitHub    *usecase.GitHubUseCase
}

// Server is the HTTP transport.
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	usecases *UseCases
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// NewServer builds the echo server with its middleware stack and routes.
func NewServer(cfg *config.Config, log *zap.Logger, usecases *UseCases) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(echomiddleware.Recover())
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.Service.BaseURL},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE},
		AllowCredentials: true,
	}))

	s := &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		usecases: usecases,
	}
	s.setupRoutes()
	return s
}

// Start begins serving on the configured port.
func (s *Server) Start() error {
	addr := ":" + s.config.Server.HTTP.Port
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	authHandler := handlers.NewAuthHandler(s.usecases.Auth, !s.config.Server.HTTP.Debug, s.logger)
	appHandler := handlers.NewAppHandler(s.usecases.App, s.usecases.GitHub, s.logger)
	shareHandler := handlers.NewShareHandler(s.usecases.ShareLink, s.logger)
	publicHandler := handlers.NewPublicHandler(s.usecases.Public, s.logger)
	taskHandler := handlers.NewTaskHandler(s.usecases.Task, s.logger)

	requireAuth := middleware.RequireAuth(s.usecases.Auth, s.logger)

	v1 := s.echo.Group("/api/v1")

	// Owner session
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/status", authHandler.Status)

	// Owner-side portfolio management
	apps := v1.Group("/apps", requireAuth)
	apps.POST("", appHandler.Create)
	apps.GET("", appHandler.List)
	apps.GET("/stats", appHandler.Stats)
	apps.GET("/:slug", appHandler.Get)
	apps.PATCH("/:slug", appHandler.Update)
	apps.DELETE("/:slug", appHandler.Delete)
	apps.POST("/:slug/updates", appHandler.CreateUpdate)
	apps.GET("/:slug/updates", appHandler.ListUpdates)
	apps.DELETE("/:slug/updates/:id", appHandler.DeleteUpdate)
	apps.POST("/:slug/deployments", appHandler.CreateDeployment)
	apps.GET("/:slug/deployments", appHandler.ListDeployments)
	apps.DELETE("/:slug/deployments/:id", appHandler.DeleteDeployment)
	apps.GET("/:slug/github", appHandler.GitHubInsights)
	apps.POST("/:slug/share", shareHandler.Create)
	apps.GET("/:slug/share", shareHandler.List)
	apps.GET("/:slug/tasks", taskHandler.ListForApp)

	// Owner-side share link and task management by identifier
	share := v1.Group("/share", requireAuth)
	share.GET("/:code", shareHandler.Get)
	share.DELETE("/:code", shareHandler.Revoke)

	tasks := v1.Group("/tasks", requireAuth)
	tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
	tasks.POST("/:id/complete", taskHandler.Complete)

	// Anonymous share code surface. Writes are rate limited per code and
	// client IP.
	public := v1.Group("/public")
	public.GET("/:code", publicHandler.GetApp)
	public.GET("/:code/feedback", publicHandler.ListFeedback)
	public.POST("/:code/feedback", publicHandler.PostFeedback,
		middleware.RateLimit("feedback", s.config.RateLimit.FeedbackPerMinute, s.logger))
	public.GET("/:code/tasks", publicHandler.ListTasks)
	public.POST("/:code/tasks", publicHandler.PostTask,
		middleware.RateLimit("tasks", s.config.RateLimit.TasksPerMinute, s.logger))
}
