package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	domainRepo "github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

type deploymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDeploymentRepository creates a new deployment repository instance.
func NewDeploymentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.DeploymentRepository {
	return &deploymentRepository{db: db, logger: logger}
}

func (r *deploymentRepository) Create(ctx context.Context, deployment *model.Deployment) error {
	if err := r.db.WithContext(ctx).Create(deployment).Error; err != nil {
		return fmt.Errorf("failed to create deployment: %w", err)
	}
	return nil
}

func (r *deploymentRepository) ListByApp(ctx context.Context, appID string) ([]model.Deployment, error) {
	var deployments []model.Deployment
	err := r.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("deployed_at DESC").
		Find(&deployments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}
	return deployments, nil
}

func (r *deploymentRepository) Delete(ctx context.Context, appID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND app_id = ?", id, appID).
		Delete(&model.Deployment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete deployment: %w", result.Error)
	}
	return nil
}
