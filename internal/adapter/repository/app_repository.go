package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	domainRepo "github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

type appRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAppRepository creates a new app repository instance.
func NewAppRepository(db *gorm.DB, logger *zap.Logger) domainRepo.AppRepository {
	return &appRepository{db: db, logger: logger}
}

func (r *appRepository) Create(ctx context.Context, app *model.App) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSlugTaken
		}
		return fmt.Errorf("failed to create app: %w", err)
	}
	return nil
}

func (r *appRepository) Save(ctx context.Context, app *model.App) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return fmt.Errorf("failed to save app: %w", err)
	}
	return nil
}

func (r *appRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.App{}).Error; err != nil {
		return fmt.Errorf("failed to delete app: %w", err)
	}
	return nil
}

func (r *appRepository) FindByID(ctx context.Context, id string) (*model.App, error) {
	return r.findOne(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *appRepository) FindBySlug(ctx context.Context, slug string) (*model.App, error) {
	return r.findOne(r.db.WithContext(ctx).Where("slug = ?", slug))
}

func (r *appRepository) FindBySlugForOwner(ctx context.Context, slug, ownerID string) (*model.App, error) {
	return r.findOne(r.db.WithContext(ctx).Where("slug = ? AND owner_id = ?", slug, ownerID))
}

func (r *appRepository) FindWithHistory(ctx context.Context, id string) (*model.App, error) {
	query := r.db.WithContext(ctx).
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Preload("Deployments", func(db *gorm.DB) *gorm.DB {
			return db.Order("deployed_at DESC")
		}).
		Where("id = ?", id)
	return r.findOne(query)
}

func (r *appRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.App, error) {
	var apps []model.App
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}
	return apps, nil
}

func (r *appRepository) ListWithUpdates(ctx context.Context, ownerID string) ([]model.App, error) {
	var apps []model.App
	err := r.db.WithContext(ctx).
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		}).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list apps with updates: %w", err)
	}
	return apps, nil
}

func (r *appRepository) findOne(query *gorm.DB) (*model.App, error) {
	var app model.App
	err := query.First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find app: %w", err)
	}
	return &app, nil
}
