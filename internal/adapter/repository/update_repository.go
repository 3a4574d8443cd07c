package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	domainRepo "github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

type updateRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUpdateRepository creates a new update repository instance.
func NewUpdateRepository(db *gorm.DB, logger *zap.Logger) domainRepo.UpdateRepository {
	return &updateRepository{db: db, logger: logger}
}

func (r *updateRepository) Create(ctx context.Context, update *model.Update) error {
	if err := r.db.WithContext(ctx).Create(update).Error; err != nil {
		return fmt.Errorf("failed to create update: %w", err)
	}
	return nil
}

func (r *updateRepository) ListByApp(ctx context.Context, appID string) ([]model.Update, error) {
	var updates []model.Update
	err := r.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("date DESC").
		Find(&updates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list updates: %w", err)
	}
	return updates, nil
}

func (r *updateRepository) Delete(ctx context.Context, appID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND app_id = ?", id, appID).
		Delete(&model.Update{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete update: %w", result.Error)
	}
	return nil
}
