package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	domainRepo "github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

type feedbackRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFeedbackRepository creates a new feedback repository instance.
func NewFeedbackRepository(db *gorm.DB, logger *zap.Logger) domainRepo.FeedbackRepository {
	return &feedbackRepository{db: db, logger: logger}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepository) ListByCode(ctx context.Context, code string) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.WithContext(ctx).
		Where("share_code = ?", code).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedbacks, nil
}
