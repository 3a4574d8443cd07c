package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	"github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

// PublicUseCase serves every operation reachable through a share code. All
// of them funnel through authorize: validate the code shape, resolve an
// active link, check the one permission flag the operation needs. Nothing
// is cached between requests; every call re-validates from scratch.
type PublicUseCase struct {
	shareLinkRepo repository.ShareLinkRepository
	appRepo       repository.AppRepository
	feedbackRepo  repository.FeedbackRepository
	taskRepo      repository.ClientTaskRepository
	now           func() time.Time
	logger        *zap.Logger
}

// NewPublicUseCase creates the public (share code) usecase. A nil clock
// uses time.Now.
func NewPublicUseCase(
	shareLinkRepo repository.ShareLinkRepository,
	appRepo repository.AppRepository,
	feedbackRepo repository.FeedbackRepository,
	taskRepo repository.ClientTaskRepository,
	now func() time.Time,
	logger *zap.Logger,
) *PublicUseCase {
	if now == nil {
		now = time.Now
	}
	return &PublicUseCase{
		shareLinkRepo: shareLinkRepo,
		appRepo:       appRepo,
		feedbackRepo:  feedbackRepo,
		taskRepo:      taskRepo,
		now:           now,
		logger:        logger,
	}
}

// authorize is the capability gate. Denials carry exactly one of three
// sentinel errors: ErrMalformedCode (format, checked before storage),
// ErrLinkNotFound (absent, inactive and expired are indistinguishable), or
// ErrPermissionDenied (link resolved, flag missing).
func (uc *PublicUseCase) authorize(ctx context.Context, code string, required model.Permission) (*model.ShareLink, error) {
	if !IsValidShareCode(code) {
		return nil, domainerrors.ErrMalformedCode
	}

	link, err := uc.shareLinkRepo.FindActive(ctx, code, uc.now())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve share link: %w", err)
	}
	if link == nil {
		return nil, domainerrors.ErrLinkNotFound
	}

	if !link.Permissions.Has(required) {
		return nil, domainerrors.ErrPermissionDenied
	}

	return link, nil
}

// touchAccess records the view for analytics. Best-effort: a failure is
// logged and never surfaces to the caller or delays the read.
func (uc *PublicUseCase) touchAccess(ctx context.Context, code string) {
	if err := uc.shareLinkRepo.TouchAccess(ctx, code, uc.now()); err != nil {
		uc.logger.Warn("Failed to update share link analytics",
			zap.String("code", code),
			zap.Error(err),
		)
	}
}

// GetAppView returns the shared app with its update and deployment history.
// Requires the view permission and counts as an access for analytics.
func (uc *PublicUseCase) GetAppView(ctx context.Context, code string) (*dto.PublicAppView, error) {
	link, err := uc.authorize(ctx, code, model.PermissionView)
	if err != nil {
		return nil, err
	}

	uc.touchAccess(ctx, code)

	app, err := uc.appRepo.FindWithHistory(ctx, link.AppID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared app: %w", err)
	}
	if app == nil {
		// The link outlived its app; treat it like a dead link.
		return nil, domainerrors.ErrLinkNotFound
	}

	return &dto.PublicAppView{
		App: dto.PublicApp{
			ID:             app.ID,
			Name:           app.Name,
			Slug:           app.Slug,
			Description:    app.Description,
			ProposedDomain: app.ProposedDomain,
			GithubURL:      app.GithubURL,
			Status:         app.Status,
			CreatedAt:      app.CreatedAt,
			UpdatedAt:      app.UpdatedAt,
			Updates:        app.Updates,
			Deployments:    app.Deployments,
			Count: dto.HistoryCounts{
				Updates:     int64(len(app.Updates)),
				Deployments: int64(len(app.Deployments)),
			},
		},
		Permissions: link.Permissions,
		ShareInfo: dto.ShareInfo{
			CreatedAt: link.CreatedAt,
			ExpiresAt: link.ExpiresAt,
		},
	}, nil
}

// ListFeedback returns feedback left on the link. Requires the comment
// permission.
func (uc *PublicUseCase) ListFeedback(ctx context.Context, code string) ([]dto.FeedbackItem, error) {
	if _, err := uc.authorize(ctx, code, model.PermissionComment); err != nil {
		return nil, err
	}

	feedbacks, err := uc.feedbackRepo.ListByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	items := make([]dto.FeedbackItem, 0, len(feedbacks))
	for _, f := range feedbacks {
		items = append(items, dto.FeedbackItem{
			ID:         f.ID,
			ClientName: f.ClientName,
			Message:    f.Message,
			CreatedAt:  f.CreatedAt,
		})
	}
	return items, nil
}

// PostFeedback stores a feedback message. Requires the comment permission.
func (uc *PublicUseCase) PostFeedback(ctx context.Context, code string, req dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	link, err := uc.authorize(ctx, code, model.PermissionComment)
	if err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		ID:         uuid.New().String(),
		ShareCode:  link.Code,
		ClientName: req.ClientName,
		Message:    req.Message,
	}
	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	appName := ""
	if link.App != nil {
		appName = link.App.Name
	}

	return &dto.FeedbackResponse{
		ID:         feedback.ID,
		Message:    feedback.Message,
		ClientName: feedback.ClientName,
		CreatedAt:  feedback.CreatedAt,
		AppName:    appName,
	}, nil
}

// ListTasks returns tasks submitted through the link. Viewing submitted
// tasks is part of viewing the shared app, so this requires the view
// permission rather than create_tasks.
func (uc *PublicUseCase) ListTasks(ctx context.Context, code string) ([]model.ClientTask, error) {
	if _, err := uc.authorize(ctx, code, model.PermissionView); err != nil {
		return nil, err
	}

	tasks, err := uc.taskRepo.ListByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// PostTask creates a PENDING task request. Requires the create_tasks
// permission.
func (uc *PublicUseCase) PostTask(ctx context.Context, code string, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	link, err := uc.authorize(ctx, code, model.PermissionCreateTasks)
	if err != nil {
		return nil, err
	}

	task := &model.ClientTask{
		ID:          uuid.New().String(),
		ShareCode:   link.Code,
		Title:       req.Title,
		Description: req.Description,
		ClientName:  req.ClientName,
		Status:      model.TaskStatusPending,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	appName := ""
	if link.App != nil {
		appName = link.App.Name
	}

	return &dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		ClientName:  task.ClientName,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		AppName:     appName,
	}, nil
}
