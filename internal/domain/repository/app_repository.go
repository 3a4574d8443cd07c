package repository

import (
	"context"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
)

// AppRepository persists apps. Missing rows are (nil, nil), not errors.
type AppRepository interface {
	// Create inserts the app; a slug collision is errors.ErrSlugTaken.
	Create(ctx context.Context, app *model.App) error

	Save(ctx context.Context, app *model.App) error

	Delete(ctx context.Context, id string) error

	FindByID(ctx context.Context, id string) (*model.App, error)

	// FindBySlug returns the app with the slug regardless of owner.
	FindBySlug(ctx context.Context, slug string) (*model.App, error)

	// FindBySlugForOwner scopes the lookup to the owning user.
	FindBySlugForOwner(ctx context.Context, slug, ownerID string) (*model.App, error)

	// FindWithHistory loads the app with updates and deployments ordered
	// newest first, for the public share view.
	FindWithHistory(ctx context.Context, id string) (*model.App, error)

	// ListByOwner returns the owner's apps, most recently updated first.
	ListByOwner(ctx context.Context, ownerID string) ([]model.App, error)

	// ListWithUpdates returns all apps with their updates preloaded
	// newest first, for the stats view.
	ListWithUpdates(ctx context.Context, ownerID string) ([]model.App, error)
}

// UpdateRepository persists progress updates.
type UpdateRepository interface {
	Create(ctx context.Context, update *model.Update) error
	ListByApp(ctx context.Context, appID string) ([]model.Update, error)
	Delete(ctx context.Context, appID, id string) error
}

// DeploymentRepository persists deployments.
type DeploymentRepository interface {
	Create(ctx context.Context, deployment *model.Deployment) error
	ListByApp(ctx context.Context, appID string) ([]model.Deployment, error)
	Delete(ctx context.Context, appID, id string) error
}
