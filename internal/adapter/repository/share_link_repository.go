package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buildloghq/buildlog-backend/internal/domain/dto"
	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	domainRepo "github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

type shareLinkRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewShareLinkRepository creates a new share link repository instance.
func NewShareLinkRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ShareLinkRepository {
	return &shareLinkRepository{db: db, logger: logger}
}

func (r *shareLinkRepository) Create(ctx context.Context, link *model.ShareLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrCodeTaken
		}
		return fmt.Errorf("failed to create share link: %w", err)
	}
	return nil
}

func (r *shareLinkRepository) FindByCode(ctx context.Context, code string) (*model.ShareLink, error) {
	var link model.ShareLink
	err := r.db.WithContext(ctx).
		Preload("App").
		Where("code = ?", code).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find share link: %w", err)
	}
	return &link, nil
}

func (r *shareLinkRepository) FindActive(ctx context.Context, code string, now time.Time) (*model.ShareLink, error) {
	var link model.ShareLink
	err := r.db.WithContext(ctx).
		Preload("App").
		Where("code = ? AND is_active = ? AND (expires_at IS NULL OR expires_at > ?)", code, true, now).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active share link: %w", err)
	}
	return &link, nil
}

func (r *shareLinkRepository) TouchAccess(ctx context.Context, code string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.ShareLink{}).
		Where("code = ?", code).
		UpdateColumns(map[string]interface{}{
			"access_count":     gorm.Expr("access_count + 1"),
			"last_accessed_at": now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record share link access: %w", result.Error)
	}
	return nil
}

func (r *shareLinkRepository) DeleteByCode(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&model.ShareLink{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete share link: %w", result.Error)
	}
	return nil
}

func (r *shareLinkRepository) ListByApp(ctx context.Context, appID string) ([]dto.ShareLinkWithCounts, error) {
	var links []model.ShareLink
	err := r.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}

	result := make([]dto.ShareLinkWithCounts, 0, len(links))
	for _, link := range links {
		entry := dto.ShareLinkWithCounts{ShareLink: link}

		if err := r.db.WithContext(ctx).
			Model(&model.Feedback{}).
			Where("share_code = ?", link.Code).
			Count(&entry.Count.Feedbacks).Error; err != nil {
			return nil, fmt.Errorf("failed to count feedback: %w", err)
		}
		if err := r.db.WithContext(ctx).
			Model(&model.ClientTask{}).
			Where("share_code = ?", link.Code).
			Count(&entry.Count.ClientTasks).Error; err != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", err)
		}

		result = append(result, entry)
	}
	return result, nil
}
