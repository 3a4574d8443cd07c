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

type clientTaskRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewClientTaskRepository creates a new client task repository instance.
func NewClientTaskRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ClientTaskRepository {
	return &clientTaskRepository{db: db, logger: logger}
}

func (r *clientTaskRepository) Create(ctx context.Context, task *model.ClientTask) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *clientTaskRepository) FindByID(ctx context.Context, id string) (*model.ClientTask, error) {
	var task model.ClientTask
	err := r.db.WithContext(ctx).
		Preload("Completion").
		Where("id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

func (r *clientTaskRepository) ListByCode(ctx context.Context, code string) ([]model.ClientTask, error) {
	var tasks []model.ClientTask
	err := r.db.WithContext(ctx).
		Preload("Completion").
		Where("share_code = ?", code).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (r *clientTaskRepository) ListByApp(ctx context.Context, appID string) ([]model.ClientTask, error) {
	var tasks []model.ClientTask
	err := r.db.WithContext(ctx).
		Preload("Completion").
		Joins("JOIN share_links ON share_links.code = client_tasks.share_code").
		Where("share_links.app_id = ?", appID).
		Order("client_tasks.created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for app: %w", err)
	}
	return tasks, nil
}

func (r *clientTaskRepository) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.ClientTask{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update task status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaskNotFound
	}
	return nil
}

// Complete creates the completion record and flips the task to COMPLETED in
// one transaction. The unique index on task_completions.task_id is the
// arbiter when two callers race: the loser's insert fails.
func (r *clientTaskRepository) Complete(ctx context.Context, taskID string, completion *model.TaskCompletion) (*model.ClientTask, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(completion).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domainerrors.ErrTaskAlreadyCompleted
			}
			return fmt.Errorf("failed to create completion record: %w", err)
		}

		result := tx.Model(&model.ClientTask{}).
			Where("id = ? AND status IN ?", taskID, []model.TaskStatus{model.TaskStatusPending, model.TaskStatusInProgress}).
			Update("status", model.TaskStatusCompleted)
		if result.Error != nil {
			return fmt.Errorf("failed to mark task completed: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	task, err := r.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domainerrors.ErrTaskNotFound
	}
	return task, nil
}
