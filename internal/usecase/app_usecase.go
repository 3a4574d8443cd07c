package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	"github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
var whitespaceRun = regexp.MustCompile(`\s+`)
var dashRun = regexp.MustCompile(`-+`)

// Slugify lowercases the name and reduces it to url-safe slug characters.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = dashRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 60 {
		s = s[:60]
	}
	if s == "" {
		s = "app"
	}
	return s
}

// AppUseCase is the thin CRUD layer over apps, updates and deployments.
type AppUseCase struct {
	appRepo        repository.AppRepository
	updateRepo     repository.UpdateRepository
	deploymentRepo repository.DeploymentRepository
	logger         *zap.Logger
}

// NewAppUseCase creates the app usecase.
func NewAppUseCase(
	appRepo repository.AppRepository,
	updateRepo repository.UpdateRepository,
	deploymentRepo repository.DeploymentRepository,
	logger *zap.Logger,
) *AppUseCase {
	return &AppUseCase{
		appRepo:        appRepo,
		updateRepo:     updateRepo,
		deploymentRepo: deploymentRepo,
		logger:         logger,
	}
}

// Create registers a new app with a unique slug derived from its name.
func (uc *AppUseCase) Create(ctx context.Context, ownerID string, req dto.CreateAppRequest) (*model.App, error) {
	status := req.Status
	if status == "" {
		status = model.AppStatusPlanning
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid app status %q", status)
	}

	base := Slugify(req.Name)
	slug := base
	// Slug uniqueness is also backed by the database index; the loop just
	// picks a free suffix in the common case.
	for i := 1; ; i++ {
		existing, err := uc.appRepo.FindBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if existing == nil {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}

	app := &model.App{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Slug:           slug,
		Description:    req.Description,
		ProposedDomain: trimmed(req.ProposedDomain),
		GithubURL:      trimmed(req.GithubURL),
		Status:         status,
		Client:         trimmed(req.Client),
		Platform:       trimmed(req.Platform),
		OwnerID:        ownerID,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	uc.logger.Info("App created",
		zap.String("app_id", app.ID),
		zap.String("slug", app.Slug),
	)
	return app, nil
}

// List returns the owner's apps, most recently updated first.
func (uc *AppUseCase) List(ctx context.Context, ownerID string) ([]model.App, error) {
	return uc.appRepo.ListByOwner(ctx, ownerID)
}

// Get returns one of the owner's apps by slug.
func (uc *AppUseCase) Get(ctx context.Context, ownerID, slug string) (*model.App, error) {
	app, err := uc.appRepo.FindBySlugForOwner(ctx, slug, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up app: %w", err)
	}
	if app == nil {
		return nil, domainerrors.ErrAppNotFound
	}
	return app, nil
}

// Update applies the non-nil fields of the request to the app.
func (uc *AppUseCase) Update(ctx context.Context, ownerID, slug string, req dto.UpdateAppRequest) (*model.App, error) {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		app.Name = *req.Name
	}
	if req.Description != nil {
		app.Description = req.Description
	}
	if req.ProposedDomain != nil {
		app.ProposedDomain = trimmed(req.ProposedDomain)
	}
	if req.GithubURL != nil {
		app.GithubURL = trimmed(req.GithubURL)
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("invalid app status %q", *req.Status)
		}
		app.Status = *req.Status
	}
	if req.Client != nil {
		app.Client = trimmed(req.Client)
	}
	if req.Platform != nil {
		app.Platform = trimmed(req.Platform)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to update app: %w", err)
	}
	return app, nil
}

// Delete removes the app. Updates, deployments, share links and the
// links' client content all go with it through the database cascades.
func (uc *AppUseCase) Delete(ctx context.Context, ownerID, slug string) error {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return err
	}
	if err := uc.appRepo.Delete(ctx, app.ID); err != nil {
		return fmt.Errorf("failed to delete app: %w", err)
	}
	uc.logger.Info("App deleted", zap.String("app_id", app.ID), zap.String("slug", slug))
	return nil
}

// AddUpdate records a progress update on the app.
func (uc *AppUseCase) AddUpdate(ctx context.Context, ownerID, slug string, req dto.CreateUpdateRequest) (*model.Update, error) {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}

	period := req.Period
	if period == "" {
		period = model.PeriodWeek
	}

	update := &model.Update{
		ID:       uuid.New().String(),
		AppID:    app.ID,
		Progress: req.Progress,
		Summary:  req.Summary,
		Blockers: req.Blockers,
		Tags:     model.StringList(req.Tags),
		Period:   period,
		Date:     time.Now(),
	}
	if err := uc.updateRepo.Create(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to create update: %w", err)
	}
	return update, nil
}

// ListUpdates returns the app's updates, newest first.
func (uc *AppUseCase) ListUpdates(ctx context.Context, ownerID, slug string) ([]model.Update, error) {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}
	return uc.updateRepo.ListByApp(ctx, app.ID)
}

// DeleteUpdate removes a single update.
func (uc *AppUseCase) DeleteUpdate(ctx context.Context, ownerID, slug, updateID string) error {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return err
	}
	return uc.updateRepo.Delete(ctx, app.ID, updateID)
}

// AddDeployment records a deployment of the app.
func (uc *AppUseCase) AddDeployment(ctx context.Context, ownerID, slug string, req dto.CreateDeploymentRequest) (*model.Deployment, error) {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}

	deployedAt := time.Now()
	if req.DeployedAt != nil {
		deployedAt = *req.DeployedAt
	}

	deployment := &model.Deployment{
		ID:          uuid.New().String(),
		AppID:       app.ID,
		Environment: req.Environment,
		Version:     req.Version,
		Notes:       req.Notes,
		DeployedAt:  deployedAt,
	}
	if err := uc.deploymentRepo.Create(ctx, deployment); err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}
	return deployment, nil
}

// ListDeployments returns the app's deployments, newest first.
func (uc *AppUseCase) ListDeployments(ctx context.Context, ownerID, slug string) ([]model.Deployment, error) {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return nil, err
	}
	return uc.deploymentRepo.ListByApp(ctx, app.ID)
}

// DeleteDeployment removes a single deployment.
func (uc *AppUseCase) DeleteDeployment(ctx context.Context, ownerID, slug, deploymentID string) error {
	app, err := uc.Get(ctx, ownerID, slug)
	if err != nil {
		return err
	}
	return uc.deploymentRepo.Delete(ctx, app.ID, deploymentID)
}

// Stats rolls up per-app progress from the latest updates.
func (uc *AppUseCase) Stats(ctx context.Context, ownerID string) ([]dto.AppStats, error) {
	apps, err := uc.appRepo.ListWithUpdates(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load apps: %w", err)
	}

	stats := make([]dto.AppStats, 0, len(apps))
	for _, app := range apps {
		entry := dto.AppStats{
			ID:          app.ID,
			Name:        app.Name,
			Slug:        app.Slug,
			Status:      app.Status,
			UpdateCount: len(app.Updates),
		}
		for _, u := range app.Updates {
			if u.Blockers != nil && strings.TrimSpace(*u.Blockers) != "" {
				entry.BlockerCount++
			}
		}
		if len(app.Updates) > 0 {
			// Updates are preloaded newest first.
			latest := app.Updates[0]
			entry.CompletionPercentage = latest.Progress
			date := latest.Date
			entry.LastUpdateDate = &date
		}
		stats = append(stats, entry)
	}
	return stats, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
